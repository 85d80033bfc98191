package dailylog

import (
	"math"
	"math/rand"
	"time"

	"github.com/mherren/daymix-server/internal/catalog"
	"github.com/mherren/daymix-server/internal/insights"
	"github.com/mherren/daymix-server/internal/models"
)

// Build bundles parsed activities into the immutable record for one day.
// Pure apart from id/date/timestamp assignment: totals and the overall
// score are derived from the activity list alone.
func Build(rawInput string, activities []models.Activity) models.DailyLog {
	totalTime := 0
	for _, a := range activities {
		totalTime += a.EstimatedTime
	}

	log := models.DailyLog{
		ID:                  generateID(),
		Date:                time.Now().Format("2006-01-02"),
		RawInput:            rawInput,
		Activities:          activities,
		TotalTime:           totalTime,
		OverallProductivity: overallProductivity(activities),
		CreatedAt:           time.Now(),
	}

	log.Insights = insightTitles(log)
	return log
}

// overallProductivity is round(100 * Σweight / (n*3)) with weights
// high=3, medium=2, low=1, and 0 for an empty day
func overallProductivity(activities []models.Activity) int {
	if len(activities) == 0 {
		return 0
	}

	sum := 0
	for _, a := range activities {
		sum += a.Productivity.Weight()
	}

	return int(math.Round(float64(sum) / float64(len(activities)*3) * 100))
}

func insightTitles(log models.DailyLog) []string {
	generated := insights.Generate(log)
	titles := make([]string, len(generated))
	for i, ins := range generated {
		titles[i] = ins.Title
	}
	return titles
}

// TimeBlocks groups a day's activities by category in catalog order,
// with each block's share of the total. Categories with no activities
// are omitted.
func TimeBlocks(log models.DailyLog) []models.TimeBlock {
	grouped := make(map[string][]models.Activity)
	for _, a := range log.Activities {
		grouped[a.Category.ID] = append(grouped[a.Category.ID], a)
	}

	var blocks []models.TimeBlock
	for _, cat := range catalog.Categories() {
		activities, ok := grouped[cat.ID]
		if !ok {
			continue
		}

		blockTime := 0
		for _, a := range activities {
			blockTime += a.EstimatedTime
		}

		percentage := 0.0
		if log.TotalTime > 0 {
			percentage = float64(blockTime) / float64(log.TotalTime) * 100
		}

		blocks = append(blocks, models.TimeBlock{
			Category:   cat,
			TotalTime:  blockTime,
			Activities: activities,
			Percentage: percentage,
		})
	}
	return blocks
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func generateID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}
