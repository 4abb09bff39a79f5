package order

// Status is an order's lifecycle stage. The wire strings match what the
// customer and kitchen views display, spaces included.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready for Delivery"
	StatusDelivered Status = "Delivered"
)

// ParseStatus validates a raw status string from a client.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return Status(raw), nil
	}
	return "", ErrUnknownStatus
}

// Next returns the following stage in the forward lifecycle.
// Delivered is terminal.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusDelivered, true
	}
	return "", false
}

func (s Status) String() string {
	return string(s)
}
