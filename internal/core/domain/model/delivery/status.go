package delivery

import (
	"fmt"
	"strings"

	"deliverytracker/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// Transitions are not constrained: SetStatus moves a delivery to any state.
//
//	Pending ──> InProgress ──> Completed
//	   │             │
//	   └─────────────┴──> Cancelled
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of every newly created delivery.
	Pending

	// InProgress means the delivery is on its way.
	InProgress

	// Completed means the product was handed over.
	Completed

	// Cancelled means the delivery will not happen.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks that s is one of Pending, InProgress, Completed or Cancelled.
//
// Returns:
//   - nil if the status is valid
//   - errs.ValueIsOutOfRangeError otherwise
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(Pending), int(Cancelled))
	}
	return nil
}

// String returns the name of the status, or "Unknown" for values outside the enum.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a status name into a Status.
//
// Matching ignores case, and "in_progress" or "in-progress" are accepted
// for InProgress.
//
// Example:
//
//	s, err := delivery.ParseStatus("completed") // Completed, nil
func ParseStatus(name string) (Status, error) {
	key := strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	for status, str := range getStatusStrings() {
		if status == Unknown {
			continue
		}
		if strings.ToLower(str) == key {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", name),
	)
}
