package validation

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType selects the validator ValidateForm dispatches to.
type FieldType string

const (
	TypePlain    FieldType = ""
	TypeEmail    FieldType = "email"
	TypePhone    FieldType = "phone"
	TypeNumber   FieldType = "number"
	TypeDate     FieldType = "date"
	TypeTime     FieldType = "time"
	TypePassword FieldType = "password"
)

// Field describes one form input and how it is checked.
type Field struct {
	Key      string
	Label    string
	Value    any
	Required bool
	Type     FieldType

	// MinLength/MaxLength apply to plain fields; zero means unset.
	MinLength int
	MaxLength int

	// Min/Max bound number fields, inclusive.
	Min *float64
	Max *float64

	// Future makes a date field require a strictly future value.
	Future bool
}

// ValidateForm checks fields in order and collects one message per failing
// field. A failed Required check skips the remaining checks for that field
// only. Optional fields left empty are not type-checked.
func ValidateForm(fields []Field, now time.Time) FormResult {
	errs := make(map[string]string)

	for _, f := range fields {
		if r := validateField(f, now); !r.Valid {
			errs[f.Key] = r.Message
		}
	}

	return FormResult{IsValid: len(errs) == 0, Errors: errs}
}

func validateField(f Field, now time.Time) Result {
	label := f.Label
	if label == "" {
		label = f.Key
	}

	if f.Required {
		if r := Required(f.Value, label); !r.Valid {
			return r
		}
	}

	if isEmpty(f.Value) {
		return ok()
	}

	value := stringify(f.Value)

	switch f.Type {
	case TypeEmail:
		return Email(value, label)
	case TypePhone:
		return Phone(value, label)
	case TypeNumber:
		return Number(value, label, f.Min, f.Max)
	case TypeDate:
		if f.Future {
			return FutureDate(value, label, now)
		}
		return Date(value, label)
	case TypeTime:
		return Time(value, label)
	case TypePassword:
		return Password(value)
	case TypePlain:
		if f.MinLength > 0 || f.MaxLength > 0 {
			return Length(value, label, f.MinLength, f.MaxLength)
		}
		return ok()
	default:
		return fail(fmt.Sprintf("%s has unsupported type %q", label, string(f.Type)))
	}
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case *string:
		return *x
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case *float64:
		return strconv.FormatFloat(*x, 'f', -1, 64)
	case *int:
		return strconv.Itoa(*x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case *time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(v)
	}
}
