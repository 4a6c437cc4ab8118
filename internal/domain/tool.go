package domain

import "github.com/shopspring/decimal"

// Tool is a lendable item. CurrentRental is derived state: it is populated
// by the repository from the open rental row, never stored on the tool row
// and never cached between reads.
type Tool struct {
	ID            string          `json:"id"`
	Brand         string          `json:"brand"`
	Name          string          `json:"name"`
	Cost          decimal.Decimal `json:"cost"`
	UserID        string          `json:"user_id"`
	CurrentRental *Rental         `json:"current_rental,omitempty"`
}

// IsRented reports whether the tool has an open rental attached.
func (t *Tool) IsRented() bool {
	return t.CurrentRental != nil
}

// CurrentBorrower returns the friend holding the tool, or nil when the
// tool is not rented.
func (t *Tool) CurrentBorrower() *Friend {
	if t.CurrentRental == nil {
		return nil
	}
	return t.CurrentRental.Friend
}
