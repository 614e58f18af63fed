package domain

// Status represents the order status.
type Status string

const (
	StatusPending Status = "pending"
	StatusPlaced  Status = "placed"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPlaced:
		return true
	default:
		return false
	}
}
