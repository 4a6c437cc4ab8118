package domain

// Friend is a contact who may borrow tools from exactly one user.
type Friend struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	SocialSecurity string `json:"social_security"`
	UserID         string `json:"user_id"`
}
