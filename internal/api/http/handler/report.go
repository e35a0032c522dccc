package handler

import (
	"context"
	"net/http"

	"github.com/candidatehub/server/internal/logger"
	"github.com/candidatehub/server/internal/model"
)

// ReportService answers the admin dashboard queries.
type ReportService interface {
	Query(ctx context.Context, search string) ([]model.Profile, model.StatsSummary, error)
	ExportCSV(ctx context.Context, search string) ([]byte, error)
	SkillsDistribution(ctx context.Context) (model.SkillsDistribution, error)
}

// Report handles the admin reporting endpoints.
type Report struct {
	service ReportService
	logger  *logger.Logger
}

// NewReport creates a new Report handler instance.
func NewReport(service ReportService, logger *logger.Logger) *Report {
	return &Report{service: service, logger: logger}
}

type profileResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Contact     string         `json:"contact"`
	Education   string         `json:"education"`
	Experience  string         `json:"experience"`
	Skills      model.SkillSet `json:"skills"`
	SkillsScore float64        `json:"skills_score"`
}

type profilesResponse struct {
	Profiles []profileResponse  `json:"profiles"`
	Stats    model.StatsSummary `json:"stats"`
	Search   string             `json:"search"`
}

// Profiles returns the candidate listing matching the optional search query,
// together with the parse statistics over all uploads.
func (h *Report) Profiles(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	profiles, stats, err := h.service.Query(r.Context(), search)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response := profilesResponse{
		Profiles: make([]profileResponse, 0, len(profiles)),
		Stats:    stats,
		Search:   search,
	}
	for _, p := range profiles {
		response.Profiles = append(response.Profiles, profileResponse{
			ID:          p.ID,
			Name:        p.Name,
			Email:       p.Email,
			Contact:     p.Contact,
			Education:   p.Education,
			Experience:  p.Experience,
			Skills:      p.Skills,
			SkillsScore: p.SkillsScore,
		})
	}

	writeJSON(w, h.logger, http.StatusOK, response)
}

// Export streams the candidate report as a CSV attachment. The search query
// narrows the exported rows the same way it narrows the listing.
func (h *Report) Export(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ExportCSV(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="candidate_report.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report); err != nil {
		h.logger.Error("failed to write csv response", "error", err.Error())
	}
}

// SkillsDistribution returns the ranked skill frequency table.
func (h *Report) SkillsDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.service.SkillsDistribution(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, distribution)
}
