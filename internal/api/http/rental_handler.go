package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type rentRequest struct {
	FriendID string `json:"friend_id"`
}

// Rent opens a loan for the tool in the path. Confirmation prompts are the
// presentation collaborator's job; this endpoint acts immediately.
func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	toolID := mux.Vars(r)["id"]

	var req rentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &domain.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}

	rental, err := h.rentalSvc.RentTool(r.Context(), userID, toolID, req.FriendID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	toolID := mux.Vars(r)["id"]

	if err := h.rentalSvc.ReturnTool(r.Context(), userID, toolID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	entries, err := h.rentalSvc.ListRentals(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapRentalRows(entries))
}
