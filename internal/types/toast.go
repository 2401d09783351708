package types

import "time"

// DefaultToastDuration is how long a notification stays visible
const DefaultToastDuration = 3 * time.Second

// Toast represents a notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Seq     uint64 // identifies this toast's pending dismissal
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// String returns the level name
func (l ToastLevel) String() string {
	switch l {
	case ToastSuccess:
		return "success"
	case ToastWarning:
		return "warning"
	case ToastError:
		return "error"
	default:
		return "info"
	}
}
