package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

// DurationTier is a billing bucket in minutes. It prices the booking but
// has nothing to do with the fixed 7-day occupancy term.
type DurationTier int

const (
	TierThirtyMin DurationTier = 30
	TierOneHour   DurationTier = 60
	TierTwoHours  DurationTier = 120
)

func (t DurationTier) Minutes() int {
	return int(t)
}

func (t DurationTier) IsValid() bool {
	switch t {
	case TierThirtyMin, TierOneHour, TierTwoHours:
		return true
	default:
		return false
	}
}
