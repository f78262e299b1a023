package bot

import (
	"regexp"
	"strconv"
	"strings"
)

// IntentKind is the classified purpose of one inbound message.
type IntentKind int

const (
	KindChat IntentKind = iota
	KindSearch
	KindOrder
)

// Intent carries the classification plus the extracted slot: a search query
// or a zero-based selection index (clamped later against the result set).
type Intent struct {
	Kind      IntentKind
	Query     string
	Selection int
}

var (
	searchKeywords = []string{"find", "search", "want", "show"}
	orderKeywords  = []string{"order", "buy", "this one", "first", "second", "third"}

	noisePattern = regexp.MustCompile(`(?i)\b(find|search|want|show|me|for|books?)\b`)
	digitPattern = regexp.MustCompile(`\b(\d+)\b`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Classify maps free text to an intent. Pure function, no I/O: search wins
// over order, order wins over chat, keyword matching is case-insensitive.
func Classify(text string) Intent {
	lower := strings.ToLower(text)

	if containsAny(lower, searchKeywords) {
		return Intent{Kind: KindSearch, Query: extractQuery(text)}
	}
	if containsAny(lower, orderKeywords) {
		return Intent{Kind: KindOrder, Selection: extractSelection(lower)}
	}
	return Intent{Kind: KindChat}
}

// extractQuery strips trigger and noise words; an emptied query defaults
// to "best".
func extractQuery(text string) string {
	query := noisePattern.ReplaceAllString(text, "")
	query = strings.TrimSpace(spacePattern.ReplaceAllString(query, " "))
	if query == "" {
		return "best"
	}
	return query
}

// extractSelection resolves which of the last search results the user means:
// an explicit number wins, then the ordinal words, then the first result.
func extractSelection(lower string) int {
	if m := digitPattern.FindString(lower); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			return n - 1
		}
	}
	switch {
	case strings.Contains(lower, "first"):
		return 0
	case strings.Contains(lower, "second"):
		return 1
	case strings.Contains(lower, "third"):
		return 2
	}
	return 0
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
