package parser

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mherren/daymix-server/internal/catalog"
	"github.com/mherren/daymix-server/internal/models"
)

// Keyword tables for categorization. Checked in this order, first match
// wins. Matching is case-insensitive substring containment, deliberately
// without word boundaries ("coding" matches inside "encoding").
var categoryKeywords = []struct {
	id       string
	keywords []string
}{
	{models.CategoryWork, []string{"meeting", "call", "email", "project", "deadline", "presentation", "report", "coding", "programming", "development"}},
	{models.CategoryLearning, []string{"learned", "studied", "reading", "course", "tutorial", "research", "documentation", "book"}},
	{models.CategoryExercise, []string{"workout", "gym", "running", "exercise", "walking", "yoga", "fitness"}},
	{models.CategorySocial, []string{"chatted", "talked", "called", "friend", "family", "social", "dinner", "lunch"}},
	{models.CategoryDistraction, []string{"scrolling", "instagram", "facebook", "youtube", "tiktok", "netflix", "tv", "procrastinated", "browsing"}},
	{models.CategoryCreative, []string{"designed", "drawing", "writing", "creative", "art", "music", "painting"}},
	{models.CategoryBreak, []string{"break", "coffee", "tea", "rest", "relaxed", "nap"}},
}

var (
	shortDurationKeywords  = []string{"quick", "briefly", "short"}
	longDurationKeywords   = []string{"long", "extended", "deep", "thorough"}
	mediumDurationKeywords = []string{"meeting", "call", "workout", "lunch", "dinner"}

	highProductivityKeywords = []string{"completed", "finished", "achieved", "accomplished", "focused", "productive", "efficient", "successful"}
	lowProductivityKeywords  = []string{"struggled", "distracted", "procrastinated", "wasted", "unfocused", "lazy"}
)

// durationRegex matches explicit time mentions like "2 hours", "45min", "1h".
// Alternation order matters: "hour" must win over "h" for "2 hours".
var durationRegex = regexp.MustCompile(`(?i)(\d+)\s*(hour|hr|minute|min|h|m)`)

const maxDurationMinutes = 480 // cap at 8 hours

// ParseInput splits raw free text into activities. It is a pure function of
// its input apart from id/timestamp assignment and never fails: empty or
// degenerate text yields an empty list.
func ParseInput(text string) []models.Activity {
	activities := []models.Activity{}

	for _, sentence := range splitSentences(text) {
		if activity, ok := parseActivity(sentence); ok {
			activities = append(activities, activity)
		}
	}

	return activities
}

// splitSentences splits on sentence terminators, trims each piece and
// drops empties. Input order is preserved; fragments are never re-joined.
func splitSentences(text string) []string {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == ';'
	})

	var sentences []string
	for _, p := range pieces {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func parseActivity(text string) (models.Activity, bool) {
	// Fragments shorter than 5 characters are the only rejection
	if len(text) < 5 {
		return models.Activity{}, false
	}

	category := categorize(text)

	return models.Activity{
		ID:            generateID(),
		Description:   text,
		Category:      category,
		EstimatedTime: estimateTime(text),
		Productivity:  assessProductivity(text, category.ID),
		Timestamp:     time.Now(),
		Tags:          extractTags(text),
	}, true
}

// categorize picks exactly one catalog entry, first keyword match wins,
// falling back to personal when nothing matches
func categorize(text string) models.Category {
	lower := strings.ToLower(text)

	for _, entry := range categoryKeywords {
		if containsAny(lower, entry.keywords) {
			return catalog.MustByID(entry.id)
		}
	}

	return catalog.MustByID(models.CategoryPersonal)
}

// estimateTime infers a duration in minutes. Rules are tried in order and
// the first applicable one wins.
func estimateTime(text string) int {
	lower := strings.ToLower(text)

	// Explicit mentions: every match in the sentence contributes
	if matches := durationRegex.FindAllStringSubmatch(lower, -1); len(matches) > 0 {
		total := 0
		for _, m := range matches {
			n, _ := strconv.Atoi(m[1])
			switch m[2] {
			case "hour", "hr", "h":
				total += n * 60
			default:
				total += n
			}
		}
		if total > maxDurationMinutes {
			total = maxDurationMinutes
		}
		return total
	}

	if containsAny(lower, shortDurationKeywords) {
		return 15
	}
	if containsAny(lower, longDurationKeywords) {
		return 120
	}
	if containsAny(lower, mediumDurationKeywords) {
		return 60
	}

	// Fall back to text length: 3 minutes per word, clamped to [15, 90]
	minutes := len(strings.Fields(text)) * 3
	if minutes < 15 {
		minutes = 15
	}
	if minutes > 90 {
		minutes = 90
	}
	return minutes
}

// assessProductivity checks explicit signal words first, then falls back
// to the category default
func assessProductivity(text, categoryID string) models.ProductivityLevel {
	lower := strings.ToLower(text)

	if containsAny(lower, highProductivityKeywords) {
		return models.ProductivityHigh
	}
	if containsAny(lower, lowProductivityKeywords) {
		return models.ProductivityLow
	}

	switch categoryID {
	case models.CategoryDistraction:
		return models.ProductivityLow
	case models.CategoryWork, models.CategoryLearning:
		return models.ProductivityMedium
	case models.CategoryBreak, models.CategoryExercise:
		return models.ProductivityHigh
	default:
		return models.ProductivityMedium
	}
}

// extractTags appends a fixed tag per trigger substring. Checks are
// independent, not mutually exclusive.
func extractTags(text string) []string {
	lower := strings.ToLower(text)

	tags := []string{}
	if strings.Contains(lower, "meeting") {
		tags = append(tags, "meeting")
	}
	if strings.Contains(lower, "email") {
		tags = append(tags, "email")
	}
	if strings.Contains(lower, "coding") || strings.Contains(lower, "programming") {
		tags = append(tags, "coding")
	}
	if strings.Contains(lower, "reading") {
		tags = append(tags, "reading")
	}
	if strings.Contains(lower, "planning") {
		tags = append(tags, "planning")
	}
	return tags
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateID returns a short low-collision base-36 id. Opaque strings are
// all the consumers need; cryptographic strength is not required.
func generateID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}
