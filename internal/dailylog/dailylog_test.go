package dailylog

import (
	"testing"
	"time"

	"github.com/mherren/daymix-server/internal/catalog"
	"github.com/mherren/daymix-server/internal/models"
)

func activity(categoryID string, minutes int, level models.ProductivityLevel) models.Activity {
	return models.Activity{
		ID:            "test",
		Description:   "test activity",
		Category:      catalog.MustByID(categoryID),
		EstimatedTime: minutes,
		Productivity:  level,
		Timestamp:     time.Now(),
		Tags:          []string{},
	}
}

func TestBuildEmpty(t *testing.T) {
	log := Build("", nil)

	if log.TotalTime != 0 {
		t.Errorf("totalTime = %d, want 0", log.TotalTime)
	}
	if log.OverallProductivity != 0 {
		t.Errorf("overallProductivity = %d, want 0", log.OverallProductivity)
	}
	if log.ID == "" {
		t.Error("expected a log id")
	}
	if log.Date != time.Now().Format("2006-01-02") {
		t.Errorf("date = %s, want today", log.Date)
	}
}

func TestBuildTotals(t *testing.T) {
	activities := []models.Activity{
		activity(models.CategoryWork, 120, models.ProductivityMedium),
		activity(models.CategoryBreak, 15, models.ProductivityHigh),
		activity(models.CategoryDistraction, 45, models.ProductivityLow),
	}

	log := Build("raw input", activities)

	if log.TotalTime != 180 {
		t.Errorf("totalTime = %d, want 180", log.TotalTime)
	}
	if log.RawInput != "raw input" {
		t.Errorf("rawInput = %q, want %q", log.RawInput, "raw input")
	}
	// weights: 2+3+1 = 6 of 9 → 67
	if log.OverallProductivity != 67 {
		t.Errorf("overallProductivity = %d, want 67", log.OverallProductivity)
	}
	if len(log.Insights) == 0 {
		t.Error("expected insight titles to be filled")
	}
}

func TestOverallProductivityAllHigh(t *testing.T) {
	activities := []models.Activity{
		activity(models.CategoryExercise, 30, models.ProductivityHigh),
		activity(models.CategoryBreak, 20, models.ProductivityHigh),
	}

	log := Build("", activities)
	if log.OverallProductivity != 100 {
		t.Errorf("overallProductivity = %d, want 100", log.OverallProductivity)
	}
}

func TestOverallProductivityAllLow(t *testing.T) {
	activities := []models.Activity{
		activity(models.CategoryDistraction, 30, models.ProductivityLow),
		activity(models.CategoryDistraction, 20, models.ProductivityLow),
	}

	log := Build("", activities)
	// weights: 2 of 6 → 33
	if log.OverallProductivity != 33 {
		t.Errorf("overallProductivity = %d, want 33", log.OverallProductivity)
	}
}

func TestTimeBlocks(t *testing.T) {
	activities := []models.Activity{
		activity(models.CategoryWork, 60, models.ProductivityMedium),
		activity(models.CategoryBreak, 30, models.ProductivityHigh),
		activity(models.CategoryWork, 30, models.ProductivityMedium),
	}

	log := Build("", activities)
	blocks := TimeBlocks(log)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	// catalog order: work before break
	if blocks[0].Category.ID != models.CategoryWork {
		t.Errorf("first block = %s, want work", blocks[0].Category.ID)
	}
	if blocks[0].TotalTime != 90 {
		t.Errorf("work block time = %d, want 90", blocks[0].TotalTime)
	}
	if blocks[0].Percentage != 75 {
		t.Errorf("work block percentage = %f, want 75", blocks[0].Percentage)
	}
	if len(blocks[0].Activities) != 2 {
		t.Errorf("work block activities = %d, want 2", len(blocks[0].Activities))
	}

	if blocks[1].Category.ID != models.CategoryBreak {
		t.Errorf("second block = %s, want break", blocks[1].Category.ID)
	}
	if blocks[1].Percentage != 25 {
		t.Errorf("break block percentage = %f, want 25", blocks[1].Percentage)
	}
}

func TestTimeBlocksEmptyLog(t *testing.T) {
	blocks := TimeBlocks(Build("", nil))
	if len(blocks) != 0 {
		t.Errorf("expected no blocks for empty log, got %d", len(blocks))
	}
}
