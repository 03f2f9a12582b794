package domain

// Identity is the profile of an authenticated principal. Credentials are
// never carried on the Identity itself; the registry owns them.
type Identity struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       Role    `json:"role"`
	Department *string `json:"department,omitempty"`
	IsPremium  bool    `json:"is_premium"`
}

// Clone returns a deep copy so callers cannot mutate the session's identity.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	copied := *i
	if i.Department != nil {
		dept := *i.Department
		copied.Department = &dept
	}
	return &copied
}
