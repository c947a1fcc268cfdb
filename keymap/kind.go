package keymap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind is the value type of a mapped location. It controls how a
// configuration value is rendered into the template and how it is read
// back during verification.
type Kind int

const (
	StringKind Kind = iota
	IntKind
	FloatKind
	BoolKind
	DateKind
)

// DateLayout is the date form the template uses.
const DateLayout = "2006-01-02"

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case StringKind:
		return []byte("string"), nil
	case IntKind:
		return []byte("int"), nil
	case FloatKind:
		return []byte("float"), nil
	case BoolKind:
		return []byte("bool"), nil
	case DateKind:
		return []byte("date"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a kind>", k)
	}
}

// Render converts a configuration value to the string written into the
// template. The value must fit the kind; booleans always render as
// "true"/"false" and dates as YYYY-MM-DD regardless of how the source
// document spelled them.
func (k Kind) Render(v any) (string, error) {
	switch k {
	case StringKind:
		return renderString(v)
	case IntKind:
		return renderInt(v)
	case FloatKind:
		return renderFloat(v)
	case BoolKind:
		return renderBool(v)
	case DateKind:
		return renderDate(v)
	default:
		return "", fmt.Errorf("%w: unknown kind %d", ErrBadValue, k)
	}
}

func renderString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case time.Time:
		return x.Format(DateLayout), nil
	default:
		return "", fmt.Errorf("%w: %v (%T) is not a scalar", ErrBadValue, v, v)
	}
}

func renderInt(v any) (string, error) {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		if x != math.Trunc(x) {
			return "", fmt.Errorf("%w: %v is not an integer", ErrBadValue, v)
		}
		return strconv.FormatInt(int64(x), 10), nil
	case string:
		if _, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64); err != nil {
			return "", fmt.Errorf("%w: %q is not an integer", ErrBadValue, x)
		}
		return strings.TrimSpace(x), nil
	default:
		return "", fmt.Errorf("%w: %v (%T) is not an integer", ErrBadValue, v, v)
	}
}

func renderFloat(v any) (string, error) {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case string:
		if _, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err != nil {
			return "", fmt.Errorf("%w: %q is not a number", ErrBadValue, x)
		}
		return strings.TrimSpace(x), nil
	default:
		return "", fmt.Errorf("%w: %v (%T) is not a number", ErrBadValue, v, v)
	}
}

func renderBool(v any) (string, error) {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x), nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a bool", ErrBadValue, x)
		}
		return strconv.FormatBool(b), nil
	default:
		return "", fmt.Errorf("%w: %v (%T) is not a bool", ErrBadValue, v, v)
	}
}

func renderDate(v any) (string, error) {
	switch x := v.(type) {
	case time.Time:
		return x.Format(DateLayout), nil
	case string:
		t, err := time.Parse(DateLayout, strings.TrimSpace(x))
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a date (want YYYY-MM-DD)", ErrBadValue, x)
		}
		return t.Format(DateLayout), nil
	default:
		return "", fmt.Errorf("%w: %v (%T) is not a date", ErrBadValue, v, v)
	}
}
