package insights

import (
	"fmt"
	"math"
	"sort"

	"github.com/mherren/daymix-server/internal/models"
)

// Generate runs all analyzers against one daily log and returns their
// combined results sorted by descending score. The sort is stable, so
// tied scores keep analyzer order.
func Generate(log models.DailyLog) []models.ProductivityInsight {
	insights := []models.ProductivityInsight{}

	insights = append(insights, analyzeProductiveTime(log)...)
	insights = append(insights, analyzeTimeWaste(log)...)
	insights = append(insights, analyzeTaskSwitching(log)...)
	insights = append(insights, analyzeCategoryBalance(log)...)

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Score > insights[j].Score
	})

	return insights
}

func analyzeProductiveTime(log models.DailyLog) []models.ProductivityInsight {
	highTime := 0
	for _, a := range log.Activities {
		if a.Productivity == models.ProductivityHigh {
			highTime += a.EstimatedTime
		}
	}
	pct := percentage(highTime, log.TotalTime)

	switch {
	case pct > 60:
		return []models.ProductivityInsight{{
			Type:           models.InsightProductiveTime,
			Title:          "Excellent Productivity!",
			Description:    fmt.Sprintf("You spent %d%% of your day in high-productivity activities.", round(pct)),
			Score:          95,
			Recommendation: "Keep up the great work! Try to identify what made today so productive.",
		}}
	case pct > 30:
		return []models.ProductivityInsight{{
			Type:           models.InsightProductiveTime,
			Title:          "Good Productivity Balance",
			Description:    fmt.Sprintf("%d%% of your time was highly productive.", round(pct)),
			Score:          70,
			Recommendation: "Consider what you could adjust to increase your productive time.",
		}}
	default:
		return []models.ProductivityInsight{{
			Type:           models.InsightProductiveTime,
			Title:          "Room for Improvement",
			Description:    fmt.Sprintf("Only %d%% of your time was highly productive.", round(pct)),
			Score:          40,
			Recommendation: "Focus on identifying and eliminating low-value activities.",
		}}
	}
}

func analyzeTimeWaste(log models.DailyLog) []models.ProductivityInsight {
	pct := percentage(categoryTime(log.Activities, models.CategoryDistraction), log.TotalTime)

	switch {
	case pct < 10:
		return []models.ProductivityInsight{{
			Type:           models.InsightWastedTime,
			Title:          "Minimal Distractions",
			Description:    fmt.Sprintf("Only %d%% of your time was spent on distractions.", round(pct)),
			Score:          90,
			Recommendation: "Excellent focus! Maintain this discipline.",
		}}
	case pct < 25:
		return []models.ProductivityInsight{{
			Type:           models.InsightWastedTime,
			Title:          "Manageable Distractions",
			Description:    fmt.Sprintf("%d%% of your time included distractions.", round(pct)),
			Score:          60,
			Recommendation: "Try to reduce distractions by 5-10 minutes per day.",
		}}
	default:
		return []models.ProductivityInsight{{
			Type:           models.InsightWastedTime,
			Title:          "High Distraction Level",
			Description:    fmt.Sprintf("%d%% of your time was spent on distractions.", round(pct)),
			Score:          30,
			Recommendation: "Consider using focus techniques like the Pomodoro method.",
		}}
	}
}

func analyzeTaskSwitching(log models.DailyLog) []models.ProductivityInsight {
	changes := 0
	for i := 1; i < len(log.Activities); i++ {
		if log.Activities[i].Category.ID != log.Activities[i-1].Category.ID {
			changes++
		}
	}

	denominator := len(log.Activities) - 1
	if denominator < 1 {
		denominator = 1
	}
	frequency := float64(changes) / float64(denominator)

	switch {
	case frequency < 0.3:
		return []models.ProductivityInsight{{
			Type:           models.InsightTaskSwitching,
			Title:          "Good Focus Flow",
			Description:    "You maintained good focus with minimal task switching.",
			Score:          85,
			Recommendation: "Continue batching similar activities together.",
		}}
	case frequency < 0.6:
		return []models.ProductivityInsight{{
			Type:           models.InsightTaskSwitching,
			Title:          "Moderate Task Switching",
			Description:    "You switched between different types of tasks regularly.",
			Score:          60,
			Recommendation: "Try to group similar activities to reduce context switching.",
		}}
	default:
		return []models.ProductivityInsight{{
			Type:           models.InsightTaskSwitching,
			Title:          "High Task Switching",
			Description:    "You frequently switched between different types of activities.",
			Score:          35,
			Recommendation: "Consider time-blocking to reduce context switching costs.",
		}}
	}
}

// analyzeCategoryBalance is the only analyzer that may emit nothing:
// outside the two ratio bands, or when there is no work time at all,
// there is no balance to comment on
func analyzeCategoryBalance(log models.DailyLog) []models.ProductivityInsight {
	workTime := categoryTime(log.Activities, models.CategoryWork)
	breakTime := categoryTime(log.Activities, models.CategoryBreak) +
		categoryTime(log.Activities, models.CategoryExercise)

	ratio := 0.0
	if workTime > 0 {
		ratio = float64(breakTime) / float64(workTime)
	}

	if ratio > 0.15 && ratio < 0.4 {
		return []models.ProductivityInsight{{
			Type:           models.InsightCategoryBalance,
			Title:          "Good Work-Life Balance",
			Description:    "You maintained a healthy balance between work and breaks.",
			Score:          80,
			Recommendation: "Keep maintaining this healthy balance.",
		}}
	}
	if ratio < 0.15 && workTime > 0 {
		return []models.ProductivityInsight{{
			Type:           models.InsightCategoryBalance,
			Title:          "Consider More Breaks",
			Description:    "You might benefit from taking more breaks during work.",
			Score:          50,
			Recommendation: "Try the 50/10 rule: 50 minutes work, 10 minutes break.",
		}}
	}
	return nil
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

// percentage guards against empty days: 0 total time means 0%
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func round(f float64) int {
	return int(math.Round(f))
}
