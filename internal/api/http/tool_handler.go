package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/service"
)

type ToolHandler struct {
	toolSvc service.ToolService
}

func NewToolHandler(toolSvc service.ToolService) *ToolHandler {
	return &ToolHandler{toolSvc: toolSvc}
}

type toolRequest struct {
	Brand string `json:"brand"`
	Name  string `json:"name"`
	Cost  string `json:"cost"`
}

func (req *toolRequest) cost() (decimal.Decimal, error) {
	cost, err := decimal.NewFromString(req.Cost)
	if err != nil {
		return decimal.Zero, &domain.ValidationError{Field: "cost", Reason: "must be a decimal number"}
	}
	return cost, nil
}

func (h *ToolHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req toolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &domain.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	cost, err := req.cost()
	if err != nil {
		writeError(w, err)
		return
	}

	tool, err := h.toolSvc.Register(r.Context(), userID, req.Brand, req.Name, cost)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapToolRow(tool))
}

func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	toolID := mux.Vars(r)["id"]

	var req toolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &domain.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	cost, err := req.cost()
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.toolSvc.Update(r.Context(), userID, toolID, req.Brand, req.Name, cost); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	toolID := mux.Vars(r)["id"]

	if err := h.toolSvc.Delete(r.Context(), userID, toolID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	toolID := mux.Vars(r)["id"]

	tool, err := h.toolSvc.Get(r.Context(), userID, toolID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapToolRow(tool))
}

func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	rentedOnly := r.URL.Query().Get("rented_only") == "true"

	tools, err := h.toolSvc.List(r.Context(), userID, rentedOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapToolRows(tools))
}
