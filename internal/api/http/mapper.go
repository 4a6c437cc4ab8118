package http

import (
	"time"

	"toolshed-backend/internal/domain"
)

// Display-ready shapes for the presentation collaborator: flat rows the way
// the main tables render them, with the derived rental state spelled out.

type ToolRow struct {
	ID          string `json:"id"`
	Brand       string `json:"brand"`
	Name        string `json:"name"`
	Cost        string `json:"cost"`
	Rented      bool   `json:"rented"`
	Borrower    string `json:"borrower,omitempty"`
	RentedSince string `json:"rented_since,omitempty"`
}

type RentalRow struct {
	ID         string `json:"id"`
	Tool       string `json:"tool"`
	Friend     string `json:"friend"`
	RentedAt   string `json:"rented_at"`
	ReturnedAt string `json:"returned_at,omitempty"`
	Open       bool   `json:"open"`
}

func mapToolRow(t *domain.Tool) ToolRow {
	row := ToolRow{
		ID:     t.ID,
		Brand:  t.Brand,
		Name:   t.Name,
		Cost:   t.Cost.StringFixed(2),
		Rented: t.IsRented(),
	}
	if borrower := t.CurrentBorrower(); borrower != nil {
		row.Borrower = borrower.Name
		row.RentedSince = t.CurrentRental.RentalTimestamp.Format(time.RFC3339)
	}
	return row
}

func mapToolRows(tools []domain.Tool) []ToolRow {
	rows := make([]ToolRow, 0, len(tools))
	for i := range tools {
		rows = append(rows, mapToolRow(&tools[i]))
	}
	return rows
}

func mapRentalRows(entries []domain.RentalHistoryEntry) []RentalRow {
	rows := make([]RentalRow, 0, len(entries))
	for _, e := range entries {
		row := RentalRow{
			ID:       e.Rental.ID,
			Tool:     e.ToolBrand + " " + e.ToolName,
			Friend:   e.FriendName,
			RentedAt: e.Rental.RentalTimestamp.Format(time.RFC3339),
			Open:     e.Rental.IsOpen(),
		}
		if e.Rental.DevolutionTimestamp != nil {
			row.ReturnedAt = e.Rental.DevolutionTimestamp.Format(time.RFC3339)
		}
		rows = append(rows, row)
	}
	return rows
}
