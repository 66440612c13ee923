package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentFilterAllowsNormalText(t *testing.T) {
	f := NewContentFilter()

	for _, text := range []string{
		"",
		"I never told my sister I broke her phone.",
		"Wow!! That was close.",
		"My exam score was 89.5 and I lied about it",
	} {
		ok, reason := f.Check(text)
		assert.True(t, ok, "expected %q to pass, got reason %q", text, reason)
	}
}

func TestContentFilterRejections(t *testing.T) {
	f := NewContentFilter()

	cases := []struct {
		text   string
		reason string
	}{
		{"this is a scam honestly", "inappropriate_content"},
		{"check https://example.com for more", "url_not_allowed"},
		{"visit www.example.com today", "url_not_allowed"},
		{"call me at 555-123-4567", "contact_info_not_allowed"},
		{"aaaaaaaaah I can't believe it", "spam_detected"},
		{"what??????? is going on", "spam_detected"},
	}
	for _, tc := range cases {
		ok, reason := f.Check(tc.text)
		assert.False(t, ok, "expected %q to be rejected", tc.text)
		assert.Equal(t, tc.reason, reason)
	}
}

func TestContentFilterBannedWordBoundaries(t *testing.T) {
	f := NewContentFilter()

	// Substring inside a larger word does not trip the filter.
	ok, _ := f.Check("I visited Spamalot the musical")
	assert.True(t, ok)

	ok, _ = f.Check("SPAM everywhere")
	assert.False(t, ok, "matching is case-insensitive")
}

func TestRejectionMessages(t *testing.T) {
	f := NewContentFilter()

	assert.Equal(t, "URLs and web links are not allowed.", f.RejectionMessage("url_not_allowed"))
	assert.Equal(t, "Your submission does not meet our content guidelines.", f.RejectionMessage("unknown_reason"))
}
