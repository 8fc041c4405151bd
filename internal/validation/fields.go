package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// \s is ASCII-only in RE2; the class adds the Unicode separators and the
	// other characters unicode.IsSpace accepts.
	emailRe = regexp.MustCompile(`^[^@\s\v\x{85}\x{FEFF}\p{Z}]+@[^@\s\v\x{85}\x{FEFF}\p{Z}]+\.[^@\s\v\x{85}\x{FEFF}\p{Z}]+$`)
	timeRe  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10,15}$`)

	phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// dateLayouts are tried in order by Date.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Required fails when value is absent or, for strings, blank after trimming.
func Required(value any, field string) Result {
	if isEmpty(value) {
		return fail(fmt.Sprintf("%s is required", field))
	}
	return ok()
}

// Length checks the rune count of value against min and, when max > 0, max.
func Length(value string, field string, min, max int) Result {
	n := len([]rune(value))
	if n < min {
		return fail(fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	if max > 0 && n > max {
		return fail(fmt.Sprintf("%s must be no more than %d characters", field, max))
	}
	return ok()
}

// Date fails when value is not a calendar date or timestamp.
func Date(value string, field string) Result {
	if _, err := parseDate(value); err != nil {
		return fail(fmt.Sprintf("%s must be a valid date", field))
	}
	return ok()
}

// FutureDate is Date plus a strict "after now" check.
func FutureDate(value string, field string, now time.Time) Result {
	d, err := parseDate(value)
	if err != nil {
		return fail(fmt.Sprintf("%s must be a valid date", field))
	}
	if !d.After(now) {
		return fail(fmt.Sprintf("%s must be in the future", field))
	}
	return ok()
}

// Number fails when value is not numeric or falls outside the optional
// inclusive bounds.
func Number(value string, field string, min, max *float64) Result {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return fail(fmt.Sprintf("%s must be a number", field))
	}
	if min != nil && n < *min {
		return fail(fmt.Sprintf("%s must be at least %s", field, formatFloat(*min)))
	}
	if max != nil && n > *max {
		return fail(fmt.Sprintf("%s must be at most %s", field, formatFloat(*max)))
	}
	return ok()
}

// Time accepts 24-hour HH:MM; the hour may be a single digit.
func Time(value string, field string) Result {
	if !timeRe.MatchString(value) {
		return fail(fmt.Sprintf("%s must be a valid time (HH:MM)", field))
	}
	return ok()
}

// Email requires exactly one @ with non-blank text on both sides and a dot
// in the domain part.
func Email(value string, field string) Result {
	if !emailRe.MatchString(value) {
		return fail(fmt.Sprintf("%s must be a valid email address", field))
	}
	return ok()
}

// Phone strips spaces, hyphens, parentheses and one leading '+', then
// requires 10 to 15 digits.
func Phone(value string, field string) Result {
	digits := strings.TrimPrefix(phoneStripper.Replace(strings.TrimSpace(value)), "+")
	if !phoneRe.MatchString(digits) {
		return fail(fmt.Sprintf("%s must be a valid phone number", field))
	}
	return ok()
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case []byte:
		return len(strings.TrimSpace(string(v))) == 0
	case *float64:
		return v == nil
	case *int:
		return v == nil
	case *time.Time:
		return v == nil
	default:
		return false
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
