package dto

import "github.com/confessly/confessly-backend/internal/models"

type CreateConfessionRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag,omitempty"`
}

type VoteRequest struct {
	VoteType string `json:"voteType"`
}

// VoteResult reports the action taken and the updated counters. VoteType is
// empty when the action removed the vote.
type VoteResult struct {
	Action     string `json:"action"`
	VoteType   string `json:"voteType,omitempty"`
	Upvotes    int    `json:"upvotes"`
	Downvotes  int    `json:"downvotes"`
	TotalVotes int    `json:"totalVotes"`
}

type FeatureRequest struct {
	IsFeatured bool `json:"isFeatured"`
}

type AddCommentRequest struct {
	Content string `json:"content"`
}

type ConfessionPage struct {
	Confessions []models.Confession `json:"confessions"`
	Pagination  Pagination          `json:"pagination"`
}

type ConfessionDetail struct {
	models.Confession
	Comments []models.Comment `json:"comments"`
}

type TrendingPage struct {
	Confessions []models.Confession `json:"confessions"`
	Period      string              `json:"period"`
}

type AdviceRequest struct {
	Title      string `json:"title"`
	Confession string `json:"confession"`
}

type AdviceResponse struct {
	Advice    string   `json:"advice"`
	Category  string   `json:"category"`
	Resources []string `json:"resources"`
}
