package kernel

import (
	"errors"
	"fmt"
	"time"

	"deliverytracker/internal/pkg/errs"
	"deliverytracker/internal/pkg/guard"

	"github.com/robfig/cron/v3"
)

// ErrDeliveryScheduleIsNotConstructed is returned when a zero-value DeliverySchedule is used.
var ErrDeliveryScheduleIsNotConstructed = errors.New(
	"DeliverySchedule must be created via NewDeliverySchedule constructor")

// slotParser accepts standard five-field cron expressions (minute hour dom month dow).
var slotParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// DeliverySchedule describes when couriers hand deliveries over, as a cron
// expression evaluated in a fixed time zone. It turns "N days from now" into
// the first concrete delivery slot on or after that moment.
//
// Example:
//
//	schedule, err := kernel.NewDeliverySchedule("0 10 * * 1-5", time.UTC)
//	if err != nil {
//	    return err
//	}
//	date := schedule.SlotAfter(time.Now(), 3) // next weekday 10:00 at least 3 days out
type DeliverySchedule struct { //nolint:recvcheck //using for validation
	expression string
	schedule   cron.Schedule
	location   *time.Location
	guard      guard.ConstructorGuard
}

// NewDeliverySchedule parses expression and binds it to location.
//
// Returns:
//   - errs.ValueIsRequiredError if expression is empty or location is nil
//   - errs.ValueIsInvalidError wrapping the parser error if expression is malformed
func NewDeliverySchedule(expression string, location *time.Location) (DeliverySchedule, error) {
	s := DeliverySchedule{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(s.setSchedule(expression), s.setLocation(location)); err != nil {
		return DeliverySchedule{}, err
	}

	return s, nil
}

// Validate reports whether the schedule was built by NewDeliverySchedule.
func (s DeliverySchedule) Validate() error {
	return s.guard.Validate(ErrDeliveryScheduleIsNotConstructed)
}

// Expression returns the cron expression the schedule was built from.
func (s DeliverySchedule) Expression() string {
	return s.expression
}

// Location returns the time zone slots are computed in.
func (s DeliverySchedule) Location() *time.Location {
	return s.location
}

// SlotAfter returns the first slot at or after from shifted by days calendar days.
// A zero-value schedule returns the shifted moment unchanged.
func (s DeliverySchedule) SlotAfter(from time.Time, days int) time.Time {
	earliest := from.AddDate(0, 0, days)
	if s.Validate() != nil {
		return earliest
	}

	// cron.Schedule.Next is strictly after its argument.
	return s.schedule.Next(earliest.In(s.location).Add(-time.Nanosecond))
}

func (s DeliverySchedule) String() string {
	if s.location == nil {
		return fmt.Sprintf("DeliverySchedule(%q)", s.expression)
	}
	return fmt.Sprintf("DeliverySchedule(%q, %s)", s.expression, s.location)
}

func (s *DeliverySchedule) setSchedule(expression string) error {
	if expression == "" {
		return errs.NewValueIsRequiredError("delivery slot")
	}

	schedule, err := slotParser.Parse(expression)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("delivery slot", err)
	}

	s.expression = expression
	s.schedule = schedule
	return nil
}

func (s *DeliverySchedule) setLocation(location *time.Location) error {
	if location == nil {
		return errs.NewValueIsRequiredError("location")
	}

	s.location = location
	return nil
}
