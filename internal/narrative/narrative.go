package narrative

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/mherren/daymix-server/internal/models"
)

// Picker selects an index in [0, n). The default is math/rand; tests
// inject a fixed picker so tier selection is deterministic.
type Picker func(n int) int

// Generator produces the companion-voice text layer over a day's
// aggregates. Tier selection is threshold-driven; only the phrasing
// within a tier is random.
type Generator struct {
	pick Picker
}

func NewGenerator() *Generator {
	return &Generator{pick: rand.Intn}
}

func NewGeneratorWithPicker(p Picker) *Generator {
	return &Generator{pick: p}
}

var celebrationLines = []string{
	"You absolutely CRUSHED it today! 🔥💪",
	"Damn, look at you being all productive and stuff! 🌟",
	"Today was your day to shine, and boy did you deliver! ✨",
	"You're basically a productivity superhero today! 🦸‍♀️",
}

var balancedLines = []string{
	"Solid day, buddy! Good mix of work and chill time 😊",
	"You found that sweet spot between hustle and rest today! 🎯",
	"Nice balance today - you're getting the hang of this! 👌",
	"Steady progress, that's what I like to see! 🚀",
}

var gentleLines = []string{
	"Hey, we all have those days - tomorrow's a fresh start! 🌅",
	"Gentle day, but that's totally okay! Progress isn't always linear 💙",
	"Some days are for rest and reset - you're human! 🤗",
	"Not every day needs to be a productivity marathon, friend! 🌸",
}

const defaultMoodLine = "Another day in the books! Every day is a chance to learn something new about yourself 📚✨"

// MoodReflection picks a tier from the day's aggregates, first match wins:
// celebration, balanced, gentle, then a fixed default.
func (g *Generator) MoodReflection(activities []models.Activity, totalTime, productivityScore int) string {
	highCount := 0
	for _, a := range activities {
		if a.Productivity == models.ProductivityHigh {
			highCount++
		}
	}

	distractionPct := 0.0
	if totalTime > 0 {
		distractionPct = float64(categoryTime(activities, models.CategoryDistraction)) / float64(totalTime) * 100
	}

	if productivityScore > 75 && highCount >= 3 {
		return celebrationLines[g.pick(len(celebrationLines))]
	}
	if productivityScore > 50 && distractionPct < 30 {
		return balancedLines[g.pick(len(balancedLines))]
	}
	if distractionPct > 40 || productivityScore < 50 {
		return gentleLines[g.pick(len(gentleLines))]
	}
	return defaultMoodLine
}

var defaultSuggestions = []string{
	"Keep riding that momentum tomorrow - you've got this! 🚀",
	"Tomorrow's another chance to be awesome - I believe in you! 💫",
	"Maybe try one tiny new thing tomorrow? Small changes, big impact! 🌟",
}

// TomorrowSuggestions evaluates the suggestion conditions in order and
// returns at most the first two that trigger. When nothing triggers it
// returns one random encouragement instead. priorInsights is accepted for
// interface symmetry with the insight engine; the current rules derive
// everything from the activities themselves.
func (g *Generator) TomorrowSuggestions(activities []models.Activity, priorInsights []models.ProductivityInsight) []string {
	_ = priorInsights

	distractionTime := categoryTime(activities, models.CategoryDistraction)
	workTime := categoryTime(activities, models.CategoryWork)
	creativeTime := categoryTime(activities, models.CategoryCreative)
	breakTime := categoryTime(activities, models.CategoryBreak) +
		categoryTime(activities, models.CategoryExercise)
	learningTime := categoryTime(activities, models.CategoryLearning)

	suggestions := []string{}

	if distractionTime > 90 {
		suggestions = append(suggestions, "Maybe try the 25-min focus, 5-min scroll rule tomorrow? Your future self will thank you! 📱⏰")
	}
	if creativeTime < 30 && workTime > 120 {
		suggestions = append(suggestions, "How about adding some creative time tomorrow? Even 20 mins of doodling can spark joy! 🎨✨")
	}
	if breakTime < 30 && workTime > 180 {
		suggestions = append(suggestions, "Your brain deserves more breaks, friend! Try the 50/10 rule - 50 min work, 10 min break 🧠💚")
	}
	if learningTime < 30 {
		suggestions = append(suggestions, "Maybe squeeze in some learning time tomorrow? Even 15 mins of reading counts! 📖🌱")
	}

	if len(suggestions) == 0 {
		return []string{defaultSuggestions[g.pick(len(defaultSuggestions))]}
	}
	if len(suggestions) > 2 {
		suggestions = suggestions[:2]
	}
	return suggestions
}

// ScoreSummary bands the weighted average productivity into an emoji and
// a one-liner. An empty day is a valid "no data yet" state, not an error.
func (g *Generator) ScoreSummary(activities []models.Activity) models.ScoreSummary {
	if len(activities) == 0 {
		return models.ScoreSummary{Score: 0, Emoji: "🤷‍♀️", Description: "No data yet, buddy!"}
	}

	sum := 0
	for _, a := range activities {
		sum += a.Productivity.Weight()
	}
	score := int(math.Round(float64(sum) / float64(len(activities)*3) * 100))

	switch {
	case score >= 80:
		return models.ScoreSummary{Score: score, Emoji: "🔥", Description: "Absolute fire today!"}
	case score >= 65:
		return models.ScoreSummary{Score: score, Emoji: "⚡", Description: "Solid energy vibes!"}
	case score >= 50:
		return models.ScoreSummary{Score: score, Emoji: "🌊", Description: "Steady flow day!"}
	case score >= 35:
		return models.ScoreSummary{Score: score, Emoji: "🌱", Description: "Growing day by day!"}
	default:
		return models.ScoreSummary{Score: score, Emoji: "🌙", Description: "Rest and reset mode!"}
	}
}

var categoryTags = map[string]string{
	models.CategoryWork:        "#Work",
	models.CategoryCreative:    "#Creative",
	models.CategoryPersonal:    "#Admin",
	models.CategoryBreak:       "#Break",
	models.CategorySocial:      "#Social",
	models.CategoryDistraction: "#Distraction",
	models.CategoryLearning:    "#Learning",
	models.CategoryExercise:    "#Exercise",
}

// Breakdown renders the top five categories by time with each category's
// longest activity
func (g *Generator) Breakdown(activities []models.Activity) string {
	if len(activities) == 0 {
		return "No activities logged yet, buddy!"
	}

	type bucket struct {
		name       string
		tag        string
		time       int
		activities []models.Activity
	}

	buckets := make(map[string]*bucket)
	var order []string
	for _, a := range activities {
		b, ok := buckets[a.Category.ID]
		if !ok {
			tag, found := categoryTags[a.Category.ID]
			if !found {
				tag = "#Other"
			}
			b = &bucket{name: a.Category.Name, tag: tag}
			buckets[a.Category.ID] = b
			order = append(order, a.Category.ID)
		}
		b.time += a.EstimatedTime
		b.activities = append(b.activities, a)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return buckets[order[i]].time > buckets[order[j]].time
	})
	if len(order) > 5 {
		order = order[:5]
	}

	var sb strings.Builder
	sb.WriteString("Here's how you spent your time:\n\n")
	for _, id := range order {
		b := buckets[id]
		sb.WriteString(fmt.Sprintf("%s **%s**: %s\n", b.tag, b.name, formatMinutes(b.time)))

		longest := b.activities[0]
		for _, a := range b.activities[1:] {
			if a.EstimatedTime > longest.EstimatedTime {
				longest = a
			}
		}
		sb.WriteString(fmt.Sprintf("   └ Longest: %s\n\n", truncate(longest.Description, 50)))
	}
	return sb.String()
}

func formatMinutes(minutes int) string {
	hours := minutes / 60
	rest := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%dm", rest)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func categoryTime(activities []models.Activity, categoryID string) int {
	total := 0
	for _, a := range activities {
		if a.Category.ID == categoryID {
			total += a.EstimatedTime
		}
	}
	return total
}
