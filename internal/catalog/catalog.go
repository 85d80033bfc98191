package catalog

import "github.com/mherren/daymix-server/internal/models"

// categories is the fixed, ordered catalog. Colors and icon keys are
// display descriptors resolved here once, never looked up by reflection.
var categories = []models.Category{
	{ID: models.CategoryWork, Name: "Work", Color: "#3B82F6", Icon: "briefcase"},
	{ID: models.CategoryLearning, Name: "Learning", Color: "#10B981", Icon: "book-open"},
	{ID: models.CategoryBreak, Name: "Break", Color: "#8B5CF6", Icon: "coffee"},
	{ID: models.CategoryExercise, Name: "Exercise", Color: "#F59E0B", Icon: "activity"},
	{ID: models.CategorySocial, Name: "Social", Color: "#EC4899", Icon: "users"},
	{ID: models.CategoryDistraction, Name: "Distraction", Color: "#EF4444", Icon: "smartphone"},
	{ID: models.CategoryPersonal, Name: "Personal", Color: "#06B6D4", Icon: "user"},
	{ID: models.CategoryCreative, Name: "Creative", Color: "#F97316", Icon: "palette"},
}

var byID = func() map[string]models.Category {
	m := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return m
}()

// Categories returns the catalog in its fixed display order
func Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

// ByID looks up a category by id
func ByID(id string) (models.Category, bool) {
	c, ok := byID[id]
	return c, ok
}

// MustByID looks up a category that is known to exist in the catalog.
// Every id the extractor assigns is one of the 8 fixed entries.
func MustByID(id string) models.Category {
	return byID[id]
}
