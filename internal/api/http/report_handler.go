package http

import (
	"net/http"

	"toolshed-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	summary, err := h.reportSvc.CalculateSummary(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) FriendsRank(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	rank, err := h.reportSvc.RankFriends(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rank)
}
