package middleware

import (
	"github.com/confessly/confessly-backend/internal/config"
	"github.com/confessly/confessly-backend/internal/dto"
	"github.com/confessly/confessly-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired gates a route on admin privilege. A caller passes when its
// email is on the configured allow-list or its user record carries the
// admin flag (which itself derives from the allow-list at save time).
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	allowlist := cfg.AdminEmailList()

	return func(c *fiber.Ctx) error {
		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.Fail("Authentication required"))
		}

		if email := UserEmail(c); email != "" && contains(allowlist, email) {
			return c.Next()
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil && user.IsAdmin {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(
			dto.Fail("Unauthorized - Admin access required"))
	}
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
