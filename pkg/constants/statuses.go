package constants

// Equipment lifecycle statuses. Forward-only: pending -> calibrated -> delivered.
const (
	StatusPending    = "pending"
	StatusCalibrated = "calibrated"
	StatusDelivered  = "delivered"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCalibrated, StatusDelivered:
		return true
	}
	return false
}
