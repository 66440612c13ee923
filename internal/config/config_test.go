package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminEmailList(t *testing.T) {
	cfg := &Config{AdminEmails: "admin@example.com, mod@example.com ,, "}
	assert.Equal(t, []string{"admin@example.com", "mod@example.com"}, cfg.AdminEmailList())

	empty := &Config{}
	assert.Nil(t, empty.AdminEmailList())
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db.internal", DBPort: "5433", DBUser: "app",
		DBPassword: "hunter2", DBName: "confessly", DBSSLMode: "require",
	}
	assert.Equal(t,
		"host=db.internal user=app password=hunter2 dbname=confessly port=5433 sslmode=require TimeZone=UTC",
		cfg.DSN())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_ACCESS_EXPIRY", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_API_URL", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAIAPIURL)
	assert.Equal(t, "15m0s", cfg.JWTAccessExpiry.String())
}
