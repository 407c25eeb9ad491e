package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a time-of-day string cannot be
// parsed as H:MM or HH:MM with in-range fields.
var ErrInvalidTimeFormat = errors.New("invalid time format")

const minutesPerDay = 24 * 60

// Normalize parses a wall-clock time in H:MM or HH:MM form and returns the
// canonical zero-padded 24-hour HH:MM representation. Canonical strings
// sort lexicographically in chronological order, which Compare relies on.
// Normalize is idempotent.
func Normalize(s string) (string, error) {
	h, m, err := parseClock(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// FormatForDisplay projects a canonical HH:MM value into a 12-hour AM/PM
// label. The projection is lossy and never mutates the canonical value;
// unparsable input is returned unchanged.
func FormatForDisplay(s string) string {
	h, m, err := parseClock(s)
	if err != nil {
		return s
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// AddMinutes adds delta minutes (possibly negative) to a time-of-day,
// wrapping across hour and day boundaries, and returns the re-normalized
// result.
func AddMinutes(s string, delta int) (string, error) {
	h, m, err := parseClock(s)
	if err != nil {
		return "", err
	}
	total := (h*60 + m + delta) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// Compare imposes a total order on canonical times: -1 if a is before b,
// 0 if equal, 1 if after.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return hour, minute, nil
}
