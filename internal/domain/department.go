package domain

// Department represents a high-level organizational unit.
type Department struct {
	ID          string
	Name        string
	Description string
	MemberCount int
	HeadCount   int
	LeadName    string
	LeadEmail   string
}
