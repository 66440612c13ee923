package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/confessly/confessly-backend/internal/dto"
	"github.com/confessly/confessly-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrConfessionNotFound = errors.New("confession not found")

// Sort modes for listing.
const (
	SortRecent   = "recent"
	SortVotes    = "votes"
	SortTrending = "trending"
)

const (
	maxTitleLen         = 200
	maxBodyLen          = 2000
	defaultTrendingDays = 7
	// Gentle decay: a 10-day-old confession trails a brand-new one with the
	// same net votes by exactly 1.0 score point.
	trendingDecayPerDay = 0.1
)

// TrendingScore combines net votes with a continuous recency penalty.
func TrendingScore(totalVotes int, createdAt, now time.Time) float64 {
	ageInDays := now.Sub(createdAt).Hours() / 24
	return float64(totalVotes) - trendingDecayPerDay*ageInDays
}

// ConfessionService handles confession CRUD, listing and ranking.
type ConfessionService struct {
	db     *gorm.DB
	filter *ContentFilter
}

func NewConfessionService(db *gorm.DB, filter *ContentFilter) *ConfessionService {
	return &ConfessionService{db: db, filter: filter}
}

// Create stores a new anonymous confession. The author's identity is not
// recorded; only the client IP is kept for moderation.
func (s *ConfessionService) Create(title, body, tag, authorIP string) (*models.Confession, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, errors.New("title and body are required")
	}
	if len(title) > maxTitleLen {
		return nil, errors.New("title must be less than 200 characters")
	}
	if len(body) > maxBodyLen {
		return nil, errors.New("body must be less than 2000 characters")
	}
	if !models.ValidTag(tag) {
		tag = models.TagOther
	}
	if ok, reason := s.filter.Check(title + " " + body); !ok {
		return nil, errors.New(s.filter.RejectionMessage(reason))
	}

	confession := models.Confession{
		ID:       uuid.New(),
		Title:    title,
		Body:     body,
		Tag:      tag,
		AuthorIP: authorIP,
	}
	if err := s.db.Create(&confession).Error; err != nil {
		return nil, err
	}
	return &confession, nil
}

// List returns one page of confessions. recent and votes sort in SQL;
// trending restricts to the last seven days and ranks by TrendingScore in
// Go so the same path serves every database.
func (s *ConfessionService) List(tag, sortMode string, page, limit int) (*dto.ConfessionPage, error) {
	page, limit = normalizePage(page, limit)

	if sortMode == SortTrending {
		confessions, total, err := s.rankTrending(tag, defaultTrendingDays, page, limit)
		if err != nil {
			return nil, err
		}
		return &dto.ConfessionPage{
			Confessions: confessions,
			Pagination:  dto.NewPagination(page, limit, total),
		}, nil
	}

	query := s.db.Model(&models.Confession{})
	if tag != "" && tag != "all" {
		query = query.Where("tag = ?", tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	order := "created_at DESC"
	if sortMode == SortVotes {
		order = "total_votes DESC, created_at DESC"
	}

	var confessions []models.Confession
	if err := query.Order(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&confessions).Error; err != nil {
		return nil, err
	}

	return &dto.ConfessionPage{
		Confessions: confessions,
		Pagination:  dto.NewPagination(page, limit, total),
	}, nil
}

// Trending is the dedicated window-adjustable trending listing.
func (s *ConfessionService) Trending(days, limit int) ([]models.Confession, error) {
	if days < 1 {
		days = defaultTrendingDays
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	confessions, _, err := s.rankTrending("", days, 1, limit)
	return confessions, err
}

func (s *ConfessionService) rankTrending(tag string, days, page, limit int) ([]models.Confession, int64, error) {
	now := time.Now()
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	query := s.db.Where("created_at >= ?", cutoff)
	if tag != "" && tag != "all" {
		query = query.Where("tag = ?", tag)
	}

	var window []models.Confession
	if err := query.Find(&window).Error; err != nil {
		return nil, 0, err
	}

	sort.SliceStable(window, func(i, j int) bool {
		si := TrendingScore(window[i].TotalVotes, window[i].CreatedAt, now)
		sj := TrendingScore(window[j].TotalVotes, window[j].CreatedAt, now)
		if si != sj {
			return si > sj
		}
		if window[i].TotalVotes != window[j].TotalVotes {
			return window[i].TotalVotes > window[j].TotalVotes
		}
		return window[i].CreatedAt.After(window[j].CreatedAt)
	})

	total := int64(len(window))
	start := (page - 1) * limit
	if start >= len(window) {
		return []models.Confession{}, total, nil
	}
	end := start + limit
	if end > len(window) {
		end = len(window)
	}
	return window[start:end], total, nil
}

// Get returns a confession with its comments, newest first.
func (s *ConfessionService) Get(id uuid.UUID) (*dto.ConfessionDetail, error) {
	var confession models.Confession
	if err := s.db.First(&confession, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfessionNotFound
		}
		return nil, err
	}

	var comments []models.Comment
	if err := s.db.Preload("Author").
		Where("confession_id = ?", id).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	return &dto.ConfessionDetail{Confession: confession, Comments: comments}, nil
}

// Delete removes a confession and cascades to its comments and ledger rows.
func (s *ConfessionService) Delete(id uuid.UUID) error {
	var confession models.Confession
	if err := s.db.First(&confession, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrConfessionNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("confession_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("confession_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&confession).Error
	})
}

// SetFeatured toggles the featured flag. No cascading effects.
func (s *ConfessionService) SetFeatured(id uuid.UUID, isFeatured bool) (*models.Confession, error) {
	var confession models.Confession
	if err := s.db.First(&confession, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfessionNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&confession).Update("is_featured", isFeatured).Error; err != nil {
		return nil, err
	}
	confession.IsFeatured = isFeatured
	return &confession, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return page, limit
}
