package domain

import "github.com/shopspring/decimal"

// Summary aggregates the owner's ledger: how many tools they own, how much
// they have invested, how many are currently out, and how many friends can
// borrow from them.
type Summary struct {
	ToolCount   int             `json:"tool_count"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	OpenRentals int             `json:"open_rentals"`
	FriendCount int             `json:"friend_count"`
}

// FriendRankEntry is one row of the friend ranking. Position is 1-based and
// assigned after sorting by all-time count descending, name ascending.
type FriendRankEntry struct {
	Position       int    `json:"position"`
	Name           string `json:"name"`
	SocialSecurity string `json:"social_security"`
	OpenCount      int    `json:"open_count"`
	AllTimeCount   int    `json:"all_time_count"`
}

// RentalHistoryEntry is one row of the rental report: a loan event joined
// with the names needed to display it.
type RentalHistoryEntry struct {
	Rental     Rental `json:"rental"`
	ToolBrand  string `json:"tool_brand"`
	ToolName   string `json:"tool_name"`
	FriendName string `json:"friend_name"`
}
