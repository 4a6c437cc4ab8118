package domain

import "time"

// Rental is one row of the append-only loan ledger. RentalTimestamp is set
// at creation and never changes. DevolutionTimestamp is nil while the tool
// is out and is set exactly once to close the loan.
type Rental struct {
	ID                  string     `json:"id"`
	RentalTimestamp     time.Time  `json:"rental_timestamp"`
	DevolutionTimestamp *time.Time `json:"devolution_timestamp,omitempty"`
	FriendID            string     `json:"friend_id"`
	ToolID              string     `json:"tool_id"`
	Friend              *Friend    `json:"friend,omitempty"` // populated on joined reads
}

// IsOpen reports whether the loan is still out.
func (r *Rental) IsOpen() bool {
	return r.DevolutionTimestamp == nil
}
