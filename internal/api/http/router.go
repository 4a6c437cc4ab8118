package http

import (
	"github.com/gorilla/mux"

	"toolshed-backend/internal/security"
	"toolshed-backend/internal/service"
)

// NewRouter wires the controller layer: one route per business operation,
// all of them behind the session-token middleware except signup and login.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	toolSvc service.ToolService,
	friendSvc service.FriendService,
	rentalSvc service.RentalService,
	reportSvc service.ReportService,
) *mux.Router {
	r := mux.NewRouter()

	authHandler := NewAuthHandler(authSvc)
	r.HandleFunc("/api/v1/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods("POST")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	toolHandler := NewToolHandler(toolSvc)
	api.HandleFunc("/tools", toolHandler.List).Methods("GET")
	api.HandleFunc("/tools", toolHandler.Register).Methods("POST")
	api.HandleFunc("/tools/{id}", toolHandler.Get).Methods("GET")
	api.HandleFunc("/tools/{id}", toolHandler.Update).Methods("PUT")
	api.HandleFunc("/tools/{id}", toolHandler.Delete).Methods("DELETE")

	rentalHandler := NewRentalHandler(rentalSvc)
	api.HandleFunc("/tools/{id}/rent", rentalHandler.Rent).Methods("POST")
	api.HandleFunc("/tools/{id}/return", rentalHandler.Return).Methods("POST")
	api.HandleFunc("/rentals", rentalHandler.List).Methods("GET")

	friendHandler := NewFriendHandler(friendSvc)
	api.HandleFunc("/friends", friendHandler.List).Methods("GET")
	api.HandleFunc("/friends", friendHandler.Register).Methods("POST")
	api.HandleFunc("/friends/{id}", friendHandler.Get).Methods("GET")
	api.HandleFunc("/friends/{id}", friendHandler.Update).Methods("PUT")
	api.HandleFunc("/friends/{id}", friendHandler.Delete).Methods("DELETE")

	reportHandler := NewReportHandler(reportSvc)
	api.HandleFunc("/reports/summary", reportHandler.Summary).Methods("GET")
	api.HandleFunc("/reports/friends-rank", reportHandler.FriendsRank).Methods("GET")

	return r
}
