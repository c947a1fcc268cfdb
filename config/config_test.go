package config

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestParseFlattens(t *testing.T) {
	in := `
# run parameters
trading_options:
  MaxTradesPerDay: 6
  DontTradeOnWeekends: true

build_mode:
  PopulationSize: 200 # bigger runs
  Islands: 4

slpt:
  MinSLInPips: 5

data_setup:
  symbol: EURUSD
  timeframe: M15
`
	d, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	var keys []string
	for _, e := range d.Entries() {
		keys = append(keys, e.Key)
	}
	want := []string{
		"trading_options.MaxTradesPerDay",
		"trading_options.DontTradeOnWeekends",
		"build_mode.PopulationSize",
		"build_mode.Islands",
		"slpt.MinSLInPips",
		"data_setup.symbol",
		"data_setup.timeframe",
	}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Entries() keys = %v, want %v", keys, want)
	}
}

func TestParseValues(t *testing.T) {
	in := `
build_mode:
  PopulationSize: 200
trading_options:
  DontTradeOnWeekends: true
data_setup:
  symbol: EURUSD
  spread: 2.5
`
	d, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	tests := []struct {
		key  string
		want string
	}{
		{"build_mode.PopulationSize", "200"},
		{"trading_options.DontTradeOnWeekends", "true"},
		{"data_setup.symbol", "EURUSD"},
		{"data_setup.spread", "2.5"},
	}
	for _, tt := range tests {
		v, ok := d.Get(tt.key)
		if !ok {
			t.Errorf("Get(%q) not found", tt.key)
			continue
		}
		// scalar types vary by YAML library; compare printed form
		if got := fmt.Sprint(v); got != tt.want {
			t.Errorf("Get(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
	if d.Has("no.such.key") {
		t.Error("Has(no.such.key) = true")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "top-level sequence", in: "- 1\n- 2\n"},
		{name: "top-level scalar", in: "42\n"},
		{name: "list value", in: "build_mode:\n  Islands:\n  - 1\n  - 2\n"},
		{name: "bad syntax", in: "a: [unclosed\n"},
		{name: "duplicate key", in: "a:\n  b: 1\na:\n  b: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.in)); !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) error = %v, want ErrParse", tt.in, err)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	d, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("Parse(nil).Len() = %d, want 0", d.Len())
	}
}

func TestEntriesCopy(t *testing.T) {
	d, err := Parse([]byte("a:\n  b: 1\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	es := d.Entries()
	es[0].Key = "mutated"
	if d.Entries()[0].Key != "a.b" {
		t.Error("Entries() exposes document state")
	}
}
