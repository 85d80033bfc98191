package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/mherren/daymix-server/internal/catalog"
	"github.com/mherren/daymix-server/internal/config"
	"github.com/mherren/daymix-server/internal/dailylog"
	"github.com/mherren/daymix-server/internal/db"
	"github.com/mherren/daymix-server/internal/insights"
	"github.com/mherren/daymix-server/internal/models"
	"github.com/mherren/daymix-server/internal/narrative"
	"github.com/mherren/daymix-server/internal/parser"
)

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
		Code:  code,
	})
}

type Handlers struct {
	cfg       *config.Config
	db        *db.DB
	narrative *narrative.Generator
}

func NewHandlers(cfg *config.Config, database *db.DB) *Handlers {
	return &Handlers{
		cfg:       cfg,
		db:        database,
		narrative: narrative.NewGenerator(),
	}
}

// Health handles GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:  "ok",
		DB:      h.checkDB(),
		Version: "1.0.0",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (h *Handlers) checkDB() string {
	if h.db == nil {
		return "not configured"
	}
	if err := h.db.Ping(); err != nil {
		return "error: " + err.Error()
	}
	return "connected"
}

// Blend handles POST /api/v1/blend. The pipeline is total over its input:
// empty text yields an empty, valid log rather than an error.
func (h *Handlers) Blend(w http.ResponseWriter, r *http.Request) {
	var req models.BlendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	activities := parser.ParseInput(req.Text)
	daylog := dailylog.Build(req.Text, activities)
	ranked := insights.Generate(daylog)

	resp := models.BlendResponse{
		Log:         daylog,
		TimeBlocks:  dailylog.TimeBlocks(daylog),
		Insights:    ranked,
		Mood:        h.narrative.MoodReflection(daylog.Activities, daylog.TotalTime, daylog.OverallProductivity),
		Suggestions: h.narrative.TomorrowSuggestions(daylog.Activities, ranked),
		Summary:     h.narrative.ScoreSummary(daylog.Activities),
		Breakdown:   h.narrative.Breakdown(daylog.Activities),
	}

	// Audit record is operational only; failures don't affect the response
	if err := h.db.LogParse(uuid.NewString(), req.DeviceID, len(req.Text), len(activities), daylog.TotalTime, daylog.OverallProductivity); err != nil {
		log.Printf("Failed to record parse %s: %v", daylog.ID, err)
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Categories handles GET /api/v1/categories
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	resp := models.CategoriesResponse{Categories: catalog.Categories()}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
