package domain

// Plan describes a subscription tier offered on the subscriptions screen.
type Plan struct {
	ID          string
	Name        string
	Price       int
	Description string
	Features    []string
	IsPopular   bool
}
