package services

import "regexp"

var bannedWords = []string{
	"spam", "scam", "scammer", "phishing", "malware",
	"porn", "porno", "nudes",
}

// ContentFilter rejects submissions that look like spam or carry contact
// details. Confessions are anonymous; letting URLs and phone numbers through
// defeats that.
type ContentFilter struct {
	bannedWordRegexps   []*regexp.Regexp
	urlPattern          *regexp.Regexp
	phonePattern        *regexp.Regexp
	repeatedCharPattern *regexp.Regexp
}

func NewContentFilter() *ContentFilter {
	f := &ContentFilter{}
	f.bannedWordRegexps = make([]*regexp.Regexp, 0, len(bannedWords))
	for _, word := range bannedWords {
		f.bannedWordRegexps = append(f.bannedWordRegexps,
			regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	f.urlPattern = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`)
	f.phonePattern = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`)
	f.repeatedCharPattern = regexp.MustCompile(`(?i)(a{6,}|e{6,}|h{6,}|o{6,}|w{6,}|!{6,}|\?{6,}|\.{6,})`)
	return f
}

// Check returns false and a reason code when the text should be rejected.
func (f *ContentFilter) Check(text string) (bool, string) {
	if text == "" {
		return true, ""
	}
	for _, re := range f.bannedWordRegexps {
		if re.MatchString(text) {
			return false, "inappropriate_content"
		}
	}
	if f.urlPattern.MatchString(text) {
		return false, "url_not_allowed"
	}
	if f.phonePattern.MatchString(text) {
		return false, "contact_info_not_allowed"
	}
	if f.repeatedCharPattern.MatchString(text) {
		return false, "spam_detected"
	}
	return true, ""
}

func (f *ContentFilter) RejectionMessage(reason string) string {
	messages := map[string]string{
		"inappropriate_content":    "Your submission contains content that is not allowed.",
		"url_not_allowed":          "URLs and web links are not allowed.",
		"contact_info_not_allowed": "Contact information is not allowed.",
		"spam_detected":            "Your submission appears to be spam.",
	}
	if msg, ok := messages[reason]; ok {
		return msg
	}
	return "Your submission does not meet our content guidelines."
}
