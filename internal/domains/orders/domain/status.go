package domain

import (
	"errors"
	"strings"
)

// Status is the order lifecycle stage. Any status may follow any other.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// StatusFilterAll is the sentinel that disables status filtering on read paths.
const StatusFilterAll = "all"

var ErrInvalidStatus = errors.New("order status is invalid")

// Statuses lists the enumeration in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}
}

// ParseStatus matches raw case-insensitively; "Canceled" is accepted as an alias of Cancelled.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, nil
	case "processing":
		return StatusProcessing, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled", "canceled":
		return StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
