package expand

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var rollingRx = regexp.MustCompile(`^rolling_([0-9]+)m_([0-9]+)$`)

// Rolling is a parsed rolling out-of-sample directive: Count consecutive
// periods of Months each.
type Rolling struct {
	Months int
	Count  int
}

// ParseRolling parses a directive of the form "rolling_<months>m_<count>".
func ParseRolling(s string) (Rolling, error) {
	m := rollingRx.FindStringSubmatch(s)
	if m == nil {
		return Rolling{}, fmt.Errorf("%w: %q (want rolling_<months>m_<count>)", ErrUnknownDirective, s)
	}
	months, err := strconv.Atoi(m[1])
	if err != nil {
		return Rolling{}, fmt.Errorf("%w: %q: %v", ErrUnknownDirective, s, err)
	}
	count, err := strconv.Atoi(m[2])
	if err != nil {
		return Rolling{}, fmt.Errorf("%w: %q: %v", ErrUnknownDirective, s, err)
	}
	if months < 1 || count < 1 {
		return Rolling{}, fmt.Errorf("%w: %q: months and count must be positive", ErrUnknownDirective, s)
	}
	return Rolling{Months: months, Count: count}, nil
}

func (r Rolling) String() string {
	return fmt.Sprintf("rolling_%dm_%d", r.Months, r.Count)
}

// Range is one expanded period, end inclusive.
type Range struct {
	From, To time.Time
}

// Ranges expands the directive over the base range [from, to] into
// Count consecutive non-overlapping sub-ranges of Months calendar months
// each, ordered chronologically. Period i starts Months*(i-1) months
// after from and ends the day before period i+1 starts. The base range
// must cover Months*Count months; a shorter range fails with
// ErrInsufficientRange before any range is emitted.
func (r Rolling) Ranges(from, to time.Time) ([]Range, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s is after %s", ErrBadRange,
			from.Format(dateLayout), to.Format(dateLayout))
	}
	if last := from.AddDate(0, r.Months*r.Count, -1); last.After(to) {
		return nil, fmt.Errorf("%w: %s needs %d months from %s, base range ends %s",
			ErrInsufficientRange, r, r.Months*r.Count, from.Format(dateLayout), to.Format(dateLayout))
	}
	// every boundary derives from the base date in a single AddDate, so
	// month-end normalization cannot open gaps between periods
	res := make([]Range, r.Count)
	for i := range res {
		res[i] = Range{
			From: from.AddDate(0, i*r.Months, 0),
			To:   from.AddDate(0, (i+1)*r.Months, -1),
		}
	}
	return res, nil
}
