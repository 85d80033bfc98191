package models

import "time"

// ProductivityLevel is the coarse three-tier value of time spent
type ProductivityLevel string

const (
	ProductivityHigh   ProductivityLevel = "high"
	ProductivityMedium ProductivityLevel = "medium"
	ProductivityLow    ProductivityLevel = "low"
)

// Weight returns the numeric weight used for the overall productivity score
func (p ProductivityLevel) Weight() int {
	switch p {
	case ProductivityHigh:
		return 3
	case ProductivityMedium:
		return 2
	default:
		return 1
	}
}

// Category ids
const (
	CategoryWork        = "work"
	CategoryLearning    = "learning"
	CategoryBreak       = "break"
	CategoryExercise    = "exercise"
	CategorySocial      = "social"
	CategoryDistraction = "distraction"
	CategoryPersonal    = "personal"
	CategoryCreative    = "creative"
)

// Category is one of the 8 fixed life-domain buckets
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Activity is one inferred unit of a day's narrative
type Activity struct {
	ID            string            `json:"id"`
	Description   string            `json:"description"`
	Category      Category          `json:"category"`
	EstimatedTime int               `json:"estimated_time"` // minutes
	Productivity  ProductivityLevel `json:"productivity_level"`
	Timestamp     time.Time         `json:"timestamp"`
	Tags          []string          `json:"tags"`
}

// DailyLog is the aggregate record of one day's parsed activities.
// Derived fields are computed at construction and never mutated.
type DailyLog struct {
	ID                  string     `json:"id"`
	Date                string     `json:"date"` // YYYY-MM-DD
	RawInput            string     `json:"raw_input"`
	Activities          []Activity `json:"activities"`
	TotalTime           int        `json:"total_time"`
	OverallProductivity int        `json:"overall_productivity"` // 0-100
	Insights            []string   `json:"insights"`             // insight titles
	CreatedAt           time.Time  `json:"created_at"`
}

// InsightType identifies which analyzer produced an insight
type InsightType string

const (
	InsightProductiveTime  InsightType = "productive_time"
	InsightWastedTime      InsightType = "wasted_time"
	InsightTaskSwitching   InsightType = "task_switching"
	InsightCategoryBalance InsightType = "category_balance"
)

// ProductivityInsight is a scored, templated observation about a daily log.
// Recomputed on every request, never persisted.
type ProductivityInsight struct {
	Type           InsightType `json:"type"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Score          int         `json:"score"` // 0-100
	Recommendation string      `json:"recommendation"`
}

// TimeBlock groups a day's activities by category
type TimeBlock struct {
	Category   Category   `json:"category"`
	TotalTime  int        `json:"total_time"`
	Activities []Activity `json:"activities"`
	Percentage float64    `json:"percentage"`
}

// BlendRequest is an incoming day submission from the client
type BlendRequest struct {
	Text     string `json:"text"`
	TSLocal  string `json:"ts_local"`
	DeviceID string `json:"device_id"`
}

// ScoreSummary is the banded presentation of the overall score
type ScoreSummary struct {
	Score       int    `json:"score"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// BlendResponse is the full pipeline output for one submission
type BlendResponse struct {
	Log         DailyLog              `json:"log"`
	TimeBlocks  []TimeBlock           `json:"time_blocks"`
	Insights    []ProductivityInsight `json:"insights"`
	Mood        string                `json:"mood"`
	Suggestions []string              `json:"suggestions"`
	Summary     ScoreSummary          `json:"summary"`
	Breakdown   string                `json:"breakdown"`
}

// CategoriesResponse is returned by the categories endpoint
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	DB      string `json:"db"`
	Version string `json:"version"`
}
