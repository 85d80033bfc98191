package narrative

import (
	"strings"
	"testing"

	"github.com/mherren/daymix-server/internal/catalog"
	"github.com/mherren/daymix-server/internal/models"
)

func fixedPicker(n int) int { return 0 }

func activity(categoryID string, minutes int, level models.ProductivityLevel) models.Activity {
	return models.Activity{
		Description:   "test activity",
		Category:      catalog.MustByID(categoryID),
		EstimatedTime: minutes,
		Productivity:  level,
	}
}

func TestMoodReflectionTiers(t *testing.T) {
	g := NewGeneratorWithPicker(fixedPicker)

	tests := []struct {
		name       string
		activities []models.Activity
		score      int
		want       string
	}{
		{
			name: "celebration needs high score and three high activities",
			activities: []models.Activity{
				activity(models.CategoryWork, 120, models.ProductivityHigh),
				activity(models.CategoryExercise, 60, models.ProductivityHigh),
				activity(models.CategoryLearning, 60, models.ProductivityHigh),
			},
			score: 80,
			want:  celebrationLines[0],
		},
		{
			name: "high score with too few high activities falls to balanced",
			activities: []models.Activity{
				activity(models.CategoryWork, 120, models.ProductivityHigh),
				activity(models.CategoryWork, 60, models.ProductivityMedium),
			},
			score: 80,
			want:  balancedLines[0],
		},
		{
			name: "balanced needs moderate score and low distraction",
			activities: []models.Activity{
				activity(models.CategoryWork, 180, models.ProductivityMedium),
				activity(models.CategoryDistraction, 20, models.ProductivityLow),
			},
			score: 60,
			want:  balancedLines[0],
		},
		{
			name: "heavy distraction forces gentle",
			activities: []models.Activity{
				activity(models.CategoryWork, 100, models.ProductivityMedium),
				activity(models.CategoryDistraction, 100, models.ProductivityLow),
			},
			score: 60,
			want:  gentleLines[0],
		},
		{
			name: "low score forces gentle",
			activities: []models.Activity{
				activity(models.CategoryWork, 60, models.ProductivityLow),
			},
			score: 30,
			want:  gentleLines[0],
		},
		{
			name: "middle ground falls through to the default line",
			activities: []models.Activity{
				activity(models.CategoryWork, 65, models.ProductivityMedium),
				activity(models.CategoryDistraction, 35, models.ProductivityLow),
			},
			score: 50,
			want:  defaultMoodLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := 0
			for _, a := range tt.activities {
				total += a.EstimatedTime
			}
			got := g.MoodReflection(tt.activities, total, tt.score)
			if got != tt.want {
				t.Errorf("MoodReflection() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoodReflectionEmptyDay(t *testing.T) {
	g := NewGeneratorWithPicker(fixedPicker)
	got := g.MoodReflection(nil, 0, 0)
	if got != gentleLines[0] {
		t.Errorf("empty day should land in the gentle tier, got %q", got)
	}
}

func TestTomorrowSuggestionsCappedAtTwo(t *testing.T) {
	g := NewGeneratorWithPicker(fixedPicker)

	// triggers all four conditions: heavy distraction, long work with no
	// creative time, no breaks, no learning
	activities := []models.Activity{
		activity(models.CategoryDistraction, 100, models.ProductivityLow),
		activity(models.CategoryWork, 200, models.ProductivityMedium),
	}

	got := g.TomorrowSuggestions(activities, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	if !strings.Contains(got[0], "scroll rule") {
		t.Errorf("first suggestion should be the scroll rule, got %q", got[0])
	}
	if !strings.Contains(got[1], "creative time") {
		t.Errorf("second suggestion should be creative time, got %q", got[1])
	}
}

func TestTomorrowSuggestionsSingleCondition(t *testing.T) {
	g := NewGeneratorWithPicker(fixedPicker)

	// only the break condition: long work, breaks too short, but creative
	// and learning time both present
	activities := []models.Activity{
		activity(models.CategoryWork, 200, models.ProductivityMedium),
		activity(models.CategoryCreative, 40, models.ProductivityMedium),
		activity(models.CategoryLearning, 45, models.ProductivityMedium),
		activity(models.CategoryBreak, 10, models.ProductivityHigh),
	}

	got := g.TomorrowSuggestions(activities, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "50/10") {
		t.Errorf("expected the break suggestion, got %q", got[0])
	}
}

func TestTomorrowSuggestionsDefault(t *testing.T) {
	g := NewGeneratorWithPicker(fixedPicker)

	// nothing triggers: modest work, creative, break and learning all covered
	activities := []models.Activity{
		activity(models.CategoryWork, 60, models.ProductivityMedium),
		activity(models.CategoryCreative, 30, models.ProductivityMedium),
		activity(models.CategoryBreak, 30, models.ProductivityHigh),
		activity(models.CategoryLearning, 30, models.ProductivityMedium),
	}

	got := g.TomorrowSuggestions(activities, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 default suggestion, got %d", len(got))
	}
	if got[0] != defaultSuggestions[0] {
		t.Errorf("expected default suggestion, got %q", got[0])
	}
}

func TestScoreSummaryBands(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name       string
		activities []models.Activity
		wantScore  int
		wantEmoji  string
	}{
		{
			name: "all high is fire",
			activities: []models.Activity{
				activity(models.CategoryWork, 60, models.ProductivityHigh),
				activity(models.CategoryExercise, 60, models.ProductivityHigh),
			},
			wantScore: 100,
			wantEmoji: "🔥",
		},
		{
			name: "mostly medium is a flow day",
			activities: []models.Activity{
				activity(models.CategoryWork, 60, models.ProductivityMedium),
				activity(models.CategoryWork, 60, models.ProductivityMedium),
				activity(models.CategoryDistraction, 30, models.ProductivityLow),
			},
			wantScore: 56,
			wantEmoji: "🌊",
		},
		{
			name: "high and medium mix has solid energy",
			activities: []models.Activity{
				activity(models.CategoryWork, 60, models.ProductivityHigh),
				activity(models.CategoryWork, 60, models.ProductivityMedium),
				activity(models.CategoryLearning, 30, models.ProductivityMedium),
			},
			wantScore: 78,
			wantEmoji: "⚡",
		},
		{
			name: "all low is rest mode",
			activities: []models.Activity{
				activity(models.CategoryDistraction, 60, models.ProductivityLow),
			},
			wantScore: 33,
			wantEmoji: "🌙",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ScoreSummary(tt.activities)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Emoji != tt.wantEmoji {
				t.Errorf("emoji = %s, want %s", got.Emoji, tt.wantEmoji)
			}
		})
	}
}

func TestScoreSummaryEmpty(t *testing.T) {
	got := NewGenerator().ScoreSummary(nil)
	if got.Score != 0 {
		t.Errorf("score = %d, want 0", got.Score)
	}
	if got.Description != "No data yet, buddy!" {
		t.Errorf("description = %q", got.Description)
	}
}

func TestBreakdown(t *testing.T) {
	g := NewGenerator()

	long := activity(models.CategoryWork, 120, models.ProductivityMedium)
	long.Description = "Worked on the quarterly report"
	short := activity(models.CategoryWork, 30, models.ProductivityMedium)
	short.Description = "Answered emails"
	rest := activity(models.CategoryBreak, 15, models.ProductivityHigh)
	rest.Description = "Coffee on the balcony"

	got := g.Breakdown([]models.Activity{short, long, rest})

	workIdx := strings.Index(got, "#Work")
	breakIdx := strings.Index(got, "#Break")
	if workIdx == -1 || breakIdx == -1 {
		t.Fatalf("expected both category tags in breakdown:\n%s", got)
	}
	if workIdx > breakIdx {
		t.Error("work should be listed before break (more time)")
	}
	if !strings.Contains(got, "2h 30m") {
		t.Errorf("expected work total of 2h 30m in:\n%s", got)
	}
	if !strings.Contains(got, "Longest: Worked on the quarterly report") {
		t.Errorf("expected the longest work activity in:\n%s", got)
	}
}

func TestBreakdownTopFive(t *testing.T) {
	g := NewGenerator()

	activities := []models.Activity{
		activity(models.CategoryWork, 120, models.ProductivityMedium),
		activity(models.CategoryLearning, 100, models.ProductivityMedium),
		activity(models.CategoryExercise, 80, models.ProductivityHigh),
		activity(models.CategorySocial, 60, models.ProductivityMedium),
		activity(models.CategoryCreative, 40, models.ProductivityMedium),
		activity(models.CategoryBreak, 20, models.ProductivityHigh),
	}

	got := g.Breakdown(activities)
	if strings.Contains(got, "#Break") {
		t.Errorf("sixth-place category should be dropped from the top five:\n%s", got)
	}
	if !strings.Contains(got, "#Creative") {
		t.Errorf("fifth-place category should survive:\n%s", got)
	}
}

func TestBreakdownEmpty(t *testing.T) {
	got := NewGenerator().Breakdown(nil)
	if got != "No activities logged yet, buddy!" {
		t.Errorf("Breakdown(nil) = %q", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{150, "2h 30m"},
	}
	for _, tt := range tests {
		if got := formatMinutes(tt.minutes); got != tt.want {
			t.Errorf("formatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 50); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	long := strings.Repeat("x", 60)
	got := truncate(long, 50)
	if len(got) != 53 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate long = %q", got)
	}
}
