package domain

// User owns a catalogue of tools and a list of friends. The record is
// created once at registration and is read-only afterwards.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
