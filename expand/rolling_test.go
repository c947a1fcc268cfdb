package expand

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseRolling(t *testing.T) {
	tests := []struct {
		in   string
		want Rolling
	}{
		{in: "rolling_3m_10", want: Rolling{Months: 3, Count: 10}},
		{in: "rolling_12m_1", want: Rolling{Months: 12, Count: 1}},
		{in: "rolling_1m_36", want: Rolling{Months: 1, Count: 36}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRolling(tt.in)
			if err != nil {
				t.Fatalf("ParseRolling(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseRolling(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseRollingUnknown(t *testing.T) {
	ins := []string{
		"",
		"rolling_3m",
		"rolling_m_10",
		"rolling_3m_",
		"rolling_3m_10x",
		"rolling_3d_10",
		"Rolling_3m_10",
		"quarterly_4",
		"rolling_0m_5",
		"rolling_3m_0",
	}
	for _, in := range ins {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseRolling(in); !errors.Is(err, ErrUnknownDirective) {
				t.Errorf("ParseRolling(%q) error = %v, want ErrUnknownDirective", in, err)
			}
		})
	}
}

func TestRangesCanonical(t *testing.T) {
	r := Rolling{Months: 3, Count: 10}
	got, err := r.Ranges(date("2020-04-17"), date("2025-04-18"))
	if err != nil {
		t.Fatalf("Ranges() error: %v", err)
	}
	want := []Range{
		{date("2020-04-17"), date("2020-07-16")},
		{date("2020-07-17"), date("2020-10-16")},
		{date("2020-10-17"), date("2021-01-16")},
		{date("2021-01-17"), date("2021-04-16")},
		{date("2021-04-17"), date("2021-07-16")},
		{date("2021-07-17"), date("2021-10-16")},
		{date("2021-10-17"), date("2022-01-16")},
		{date("2022-01-17"), date("2022-04-16")},
		{date("2022-04-17"), date("2022-07-16")},
		{date("2022-07-17"), date("2022-10-16")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ranges() = %v, want %v", got, want)
	}

	again, err := r.Ranges(date("2020-04-17"), date("2025-04-18"))
	if err != nil {
		t.Fatalf("Ranges() error on repeat: %v", err)
	}
	if !reflect.DeepEqual(got, again) {
		t.Errorf("Ranges() is not deterministic:\n%v\n%v", got, again)
	}
}

func TestRangesConsecutive(t *testing.T) {
	tests := []struct {
		name    string
		rolling Rolling
		from    string
		to      string
	}{
		{name: "mid month", rolling: Rolling{3, 10}, from: "2020-04-17", to: "2025-04-18"},
		{name: "month end", rolling: Rolling{3, 4}, from: "2020-01-31", to: "2021-03-01"},
		{name: "leap february", rolling: Rolling{1, 3}, from: "2020-01-30", to: "2020-05-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rolling.Ranges(date(tt.from), date(tt.to))
			if err != nil {
				t.Fatalf("Ranges() error: %v", err)
			}
			if len(got) != tt.rolling.Count {
				t.Fatalf("len(Ranges()) = %d, want %d", len(got), tt.rolling.Count)
			}
			for i, rg := range got {
				if !rg.From.Before(rg.To) {
					t.Errorf("period %d: From %s not before To %s", i+1,
						rg.From.Format(dateLayout), rg.To.Format(dateLayout))
				}
				if i == 0 {
					continue
				}
				gap := got[i-1].To.AddDate(0, 0, 1)
				if !gap.Equal(rg.From) {
					t.Errorf("period %d starts %s, want %s (day after period %d ends)",
						i+1, rg.From.Format(dateLayout), gap.Format(dateLayout), i)
				}
			}
		})
	}
}

func TestRangesInsufficient(t *testing.T) {
	r := Rolling{Months: 3, Count: 10}
	// 30 months fit through 2022-10-16 exactly
	if _, err := r.Ranges(date("2020-04-17"), date("2022-10-16")); err != nil {
		t.Errorf("Ranges() on exact fit error: %v", err)
	}
	got, err := r.Ranges(date("2020-04-17"), date("2022-10-15"))
	if !errors.Is(err, ErrInsufficientRange) {
		t.Fatalf("Ranges() error = %v, want ErrInsufficientRange", err)
	}
	if got != nil {
		t.Errorf("Ranges() emitted %d ranges alongside the error", len(got))
	}
}

func TestRangesBadRange(t *testing.T) {
	r := Rolling{Months: 1, Count: 1}
	if _, err := r.Ranges(date("2021-01-01"), date("2020-01-01")); !errors.Is(err, ErrBadRange) {
		t.Errorf("Ranges() error = %v, want ErrBadRange", err)
	}
}
