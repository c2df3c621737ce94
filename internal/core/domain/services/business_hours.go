package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"foodbot/internal/pkg/errs"
	"foodbot/internal/pkg/guard"
)

var (
	// ErrBusinessHoursIsNotConstructed is returned when BusinessHours was not
	// created via NewBusinessHours or DefaultBusinessHours.
	ErrBusinessHoursIsNotConstructed = errors.New(
		"BusinessHours must be created via NewBusinessHours or DefaultBusinessHours")

	// ErrNoOpenDays is returned when a schedule has no open days.
	ErrNoOpenDays = errors.New("at least one open day is required")
)

// Default schedule: Monday, Tuesday and Sunday, 08:00 to 22:00.
var (
	DefaultOpenDays = []time.Weekday{time.Monday, time.Tuesday, time.Sunday}
	DefaultOpensAt  = 8 * time.Hour
	DefaultClosesAt = 22 * time.Hour
)

// mondayFirst is the order days are rendered in.
var mondayFirst = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// BusinessHours decides whether the shop is open at a given instant.
//
// The shop is open on the configured weekdays between opensAt and closesAt,
// both inclusive. Times are offsets from local midnight in the configured
// location. With the default 22:00 closing, 22:00:00 is open and any instant
// after it is closed.
//
// Example:
//
//	hours := services.DefaultBusinessHours(time.Local)
//	if !hours.IsOpen(time.Now()) {
//	    fmt.Println("closed, open", hours)
//	}
type BusinessHours struct {
	days     map[time.Weekday]struct{}
	opensAt  time.Duration
	closesAt time.Duration
	location *time.Location

	guard guard.ConstructorGuard
}

// NewBusinessHours validates and builds a schedule.
// opensAt and closesAt are offsets from midnight in [0, 24h] with
// opensAt <= closesAt. A nil location means time.Local.
func NewBusinessHours(
	days []time.Weekday,
	opensAt, closesAt time.Duration,
	location *time.Location,
) (BusinessHours, error) {
	if len(days) == 0 {
		return BusinessHours{}, errs.NewValueIsRequiredErrorWithCause("open days", ErrNoOpenDays)
	}

	const day = 24 * time.Hour
	if err := errors.Join(
		checkOffset("opens at", opensAt, day),
		checkOffset("closes at", closesAt, day),
	); err != nil {
		return BusinessHours{}, err
	}
	if opensAt > closesAt {
		return BusinessHours{}, errs.NewValueIsOutOfRangeError("opens at", formatClock(opensAt), "00:00", formatClock(closesAt))
	}

	if location == nil {
		location = time.Local
	}

	set := make(map[time.Weekday]struct{}, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return BusinessHours{}, errs.NewValueIsOutOfRangeError("weekday", int(d), int(time.Sunday), int(time.Saturday))
		}
		set[d] = struct{}{}
	}

	return BusinessHours{
		days:     set,
		opensAt:  opensAt,
		closesAt: closesAt,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DefaultBusinessHours returns the default schedule in the given location.
func DefaultBusinessHours(location *time.Location) BusinessHours {
	hours, err := NewBusinessHours(DefaultOpenDays, DefaultOpensAt, DefaultClosesAt, location)
	if err != nil {
		panic(err) // the defaults are constants
	}
	return hours
}

// Validate ensures the schedule was built through a constructor.
func (b BusinessHours) Validate() error {
	return b.guard.Validate(ErrBusinessHoursIsNotConstructed)
}

// IsOpen reports whether the shop is open at t.
func (b BusinessHours) IsOpen(t time.Time) bool {
	if b.Validate() != nil {
		return false
	}

	local := t.In(b.location)
	if _, ok := b.days[local.Weekday()]; !ok {
		return false
	}

	offset := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())

	return b.opensAt <= offset && offset <= b.closesAt
}

// String renders the schedule, e.g. "Mon, Tue, Sun 08:00 - 22:00".
func (b BusinessHours) String() string {
	names := make([]string, 0, len(b.days))
	for _, d := range mondayFirst {
		if _, ok := b.days[d]; ok {
			names = append(names, d.String()[:3])
		}
	}
	return fmt.Sprintf("%s %s - %s", strings.Join(names, ", "), formatClock(b.opensAt), formatClock(b.closesAt))
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into an offset from midnight.
// "24:00" is accepted as the end of the day.
func ParseClock(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, errs.NewValueIsInvalidErrorWithCause("clock", fmt.Errorf("%q is not HH:MM", s))
	}

	limits := []int{24, 59, 59}
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	labels := []string{"hour", "minute", "second"}

	var offset time.Duration
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause("clock", err)
		}
		if n < 0 || n > limits[i] {
			return 0, errs.NewValueIsOutOfRangeError(labels[i], n, 0, limits[i])
		}
		offset += time.Duration(n) * units[i]
	}

	if offset > 24*time.Hour {
		return 0, errs.NewValueIsOutOfRangeError("clock", s, "00:00", "24:00")
	}
	return offset, nil
}

// ParseWeekdays parses a comma separated list of day names such as
// "sun,mon,tue" or "Monday, Tuesday". Matching is case-insensitive on the
// first three letters.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, raw := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		day, ok := lookupWeekday(name)
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("weekday", fmt.Errorf("unknown day %q", raw))
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("open days", ErrNoOpenDays)
	}
	return days, nil
}

func lookupWeekday(name string) (time.Weekday, bool) {
	if len(name) < 3 {
		return 0, false
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if strings.HasPrefix(full, name) && strings.HasPrefix(name, full[:3]) {
			return d, true
		}
	}
	return 0, false
}

func checkOffset(param string, offset, limit time.Duration) error {
	if offset < 0 || offset > limit {
		return errs.NewValueIsOutOfRangeError(param, formatClock(offset), "00:00", "24:00")
	}
	return nil
}

func formatClock(offset time.Duration) string {
	h := offset / time.Hour
	m := (offset % time.Hour) / time.Minute
	s := (offset % time.Minute) / time.Second
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
