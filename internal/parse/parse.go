package parse

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MinBarWidth is the narrowest progress bar accepted.
const MinBarWidth = 10

// MaxRepeat is the largest repeat count accepted. A session holds
// 2*(MaxRepeat+1) stages.
const MaxRepeat = 10000

// Value errors. Returned errors wrap one of these so callers can use errors.Is.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrNonPositive   = errors.New("must be greater than zero")
	ErrBelowMinimum  = errors.New("below minimum")
)

var (
	durationPattern = regexp.MustCompile(`^(\d+)([sm]?)$`)
	digitsPattern   = regexp.MustCompile(`^\d+$`)
)

// maxDurationAmount is the largest amount (in seconds) a time.Duration holds.
const maxDurationAmount = math.MaxInt64 / int64(time.Second)

// Duration parses a focus or rest duration.
// "25" and "25m" are 25 minutes, "90s" is 90 seconds.
func Duration(text string) (time.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid time %q: %w: use N, Ns, or Nm (examples: 25, 25m, 1500s)", text, ErrInvalidFormat)
	}

	amount, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w: out of range", text, ErrInvalidFormat)
	}
	if amount == 0 {
		return 0, fmt.Errorf("invalid time %q: %w", text, ErrNonPositive)
	}

	unit := int64(60)
	if m[2] == "s" {
		unit = 1
	}
	if amount > maxDurationAmount/unit {
		return 0, fmt.Errorf("invalid time %q: %w: out of range", text, ErrInvalidFormat)
	}

	return time.Duration(amount*unit) * time.Second, nil
}

// Repeat parses the number of additional focus/rest cycles.
func Repeat(text string) (int, error) {
	n, err := unsigned(text)
	if err != nil {
		return 0, fmt.Errorf("invalid repeat count %q: %w: must be a non-negative integer", text, err)
	}
	if n > MaxRepeat {
		return 0, fmt.Errorf("invalid repeat count %q: %w: out of range (maximum %d)", text, ErrInvalidFormat, MaxRepeat)
	}
	return n, nil
}

// BarWidth parses the progress bar width.
func BarWidth(text string) (int, error) {
	n, err := unsigned(text)
	if err != nil {
		return 0, fmt.Errorf("invalid bar width %q: %w: must be an integer", text, err)
	}
	if n < MinBarWidth {
		return 0, fmt.Errorf("invalid bar width %q: %w: must be at least %d", text, ErrBelowMinimum, MinBarWidth)
	}
	return n, nil
}

// unsigned parses a trimmed run of ASCII digits.
func unsigned(text string) (int, error) {
	s := strings.TrimSpace(text)
	if !digitsPattern.MatchString(s) {
		return 0, ErrInvalidFormat
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// only reachable on overflow
		return 0, ErrInvalidFormat
	}
	return n, nil
}
