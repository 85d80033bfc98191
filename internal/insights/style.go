package insights

import "github.com/mherren/daymix-server/internal/models"

// Style is the fixed rendering descriptor for an insight type. Consumers
// look these up once per type instead of recomputing per render.
type Style struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var styles = map[models.InsightType]Style{
	models.InsightProductiveTime:  {Icon: "award", Color: "teal"},
	models.InsightWastedTime:      {Icon: "alert-triangle", Color: "rose"},
	models.InsightTaskSwitching:   {Icon: "zap", Color: "amber"},
	models.InsightCategoryBalance: {Icon: "sparkles", Color: "cyan"},
}

var defaultStyle = Style{Icon: "lightbulb", Color: "amber"}

// StyleFor returns the static style descriptor for an insight type
func StyleFor(t models.InsightType) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return defaultStyle
}
