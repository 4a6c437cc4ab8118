package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/service"
)

type FriendHandler struct {
	friendSvc service.FriendService
}

func NewFriendHandler(friendSvc service.FriendService) *FriendHandler {
	return &FriendHandler{friendSvc: friendSvc}
}

type friendRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	SocialSecurity string `json:"social_security"`
}

func (h *FriendHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req friendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &domain.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}

	friend, err := h.friendSvc.Register(r.Context(), userID, req.Name, req.Phone, req.SocialSecurity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, friend)
}

func (h *FriendHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	friendID := mux.Vars(r)["id"]

	var req friendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &domain.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}

	if err := h.friendSvc.Update(r.Context(), userID, friendID, req.Name, req.Phone, req.SocialSecurity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *FriendHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	friendID := mux.Vars(r)["id"]

	if err := h.friendSvc.Delete(r.Context(), userID, friendID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *FriendHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	friendID := mux.Vars(r)["id"]

	friend, err := h.friendSvc.Get(r.Context(), userID, friendID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, friend)
}

func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	friends, err := h.friendSvc.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, friends)
}
