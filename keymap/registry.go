package keymap

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry describes one registry key for listing. Family entries use a
// placeholder form, e.g. "trading_options.<param>".
type Entry struct {
	Key  string
	Path string
	Kind Kind
}

// family resolves one pattern-shaped key family, synthesizing the
// location from the key's variable part.
type family struct {
	placeholder string
	example     Location
	resolve     func(key string) (Location, bool)
}

type registry struct {
	fixed    map[string]Location
	order    []string
	families []family
}

var reg = newRegistry()

// Resolve maps a logical configuration key to its template location.
// Unknown keys fail with ErrMissingKey; they are never silently ignored.
func Resolve(key string) (Location, error) {
	if loc, ok := reg.fixed[key]; ok {
		return loc, nil
	}
	for _, fam := range reg.families {
		if fam.resolve == nil {
			continue
		}
		if loc, ok := fam.resolve(key); ok {
			return loc, nil
		}
	}
	return Location{}, fmt.Errorf("%w: %s", ErrMissingKey, key)
}

// All returns every registry entry in a stable order: fixed keys first,
// then family placeholders.
func All() []Entry {
	res := make([]Entry, 0, len(reg.order)+len(reg.families))
	for _, key := range reg.order {
		loc := reg.fixed[key]
		res = append(res, Entry{Key: key, Path: loc.String(), Kind: loc.Kind})
	}
	for _, fam := range reg.families {
		res = append(res, Entry{
			Key:  fam.placeholder,
			Path: fam.example.String(),
			Kind: fam.example.Kind,
		})
	}
	return res
}

// Columns returns the filter columns recognized under the conditions
// section, in registry order.
func Columns() []string {
	res := make([]string, len(conditionColumns))
	copy(res, conditionColumns)
	return res
}

// conditionColumns are the SQX result columns a filter condition can
// constrain. Closed set: a conditions key naming anything else fails
// resolution.
var conditionColumns = []string{
	"NetProfit",
	"ProfitFactor",
	"Stability",
	"MaxDrawdown",
	"WinRate",
	"SharpeRatio",
	"RetDD",
	"NumberOfTrades",
}

// RootTag is the template's document root. Every location path starts
// here.
const RootTag = "Strategy"

// childOrder fixes the canonical position of each known child tag within
// its parent, so nodes created by the upsert engine land at the slot the
// template schema implies instead of blindly last.
var childOrder = map[string][]string{
	"Strategy":            {"BuildTradingOptions", "BuildMode", "SLPTOptions", "Symbol", "Data", "BacktestSettings", "FilterParams"},
	"BuildTradingOptions": {"Params"},
	"BuildMode":           {"generationType", "PopulationSize", "MaxGenerations", "Islands"},
	"SLPTOptions":         {"MinSLInPips", "MaxSLInPips"},
	"Data":                {"From", "To", "OutOfSample"},
	"BacktestSettings":    {"TestPrecision", "Spread", "Slippage"},
	"FilterParams":        {"Conditions"},
}

// SlotIndex returns the canonical position of childTag among parentTag's
// children, or -1 when the schema does not fix one.
func SlotIndex(parentTag, childTag string) int {
	for i, tag := range childOrder[parentTag] {
		if tag == childTag {
			return i
		}
	}
	return -1
}

func newRegistry() *registry {
	r := &registry{fixed: map[string]Location{}}
	add := func(key string, kind Kind, attr string, tags ...string) {
		path := make([]Segment, len(tags))
		for i, tag := range tags {
			path[i] = Segment{Tag: tag}
		}
		r.fixed[key] = Location{Key: key, Path: path, Attr: attr, Kind: kind}
		r.order = append(r.order, key)
	}

	add("build_mode.generationType", StringKind, "", "Strategy", "BuildMode", "generationType")
	add("build_mode.PopulationSize", IntKind, "", "Strategy", "BuildMode", "PopulationSize")
	add("build_mode.MaxGenerations", IntKind, "", "Strategy", "BuildMode", "MaxGenerations")
	add("build_mode.Islands", IntKind, "", "Strategy", "BuildMode", "Islands")
	add("slpt.MinSLInPips", IntKind, "", "Strategy", "SLPTOptions", "MinSLInPips")
	add("slpt.MaxSLInPips", IntKind, "", "Strategy", "SLPTOptions", "MaxSLInPips")
	add("data_setup.symbol_timeframe", StringKind, "", "Strategy", "Symbol")
	add("data_setup.date_from", DateKind, "", "Strategy", "Data", "From")
	add("data_setup.date_to", DateKind, "", "Strategy", "Data", "To")
	add("data_setup.test_precision", IntKind, "", "Strategy", "BacktestSettings", "TestPrecision")
	add("data_setup.spread", FloatKind, "", "Strategy", "BacktestSettings", "Spread")
	add("data_setup.slippage", FloatKind, "", "Strategy", "BacktestSettings", "Slippage")

	r.families = []family{
		{
			placeholder: "trading_options.<param>",
			example:     paramLocation("trading_options.<param>", "<param>"),
			resolve:     resolveParam,
		},
		{
			placeholder: "oos.period_<n>.from",
			example:     periodLocation("oos.period_<n>.from", "<n>", "From"),
			resolve:     resolvePeriod,
		},
		{
			placeholder: "oos.period_<n>.to",
			example:     periodLocation("oos.period_<n>.to", "<n>", "To"),
			resolve:     nil, // handled by the period family above
		},
		{
			placeholder: "conditions.<column>_<IS|OOS>",
			example:     conditionLocation("conditions.<column>_<IS|OOS>", "<column>", "10", false),
			resolve:     resolveCondition,
		},
		{
			placeholder: "conditions.<column>_<IS|OOS>.enable",
			example:     conditionLocation("conditions.<column>_<IS|OOS>.enable", "<column>", "10", true),
			resolve:     nil, // handled by the condition family above
		},
	}
	return r
}

func resolveParam(key string) (Location, bool) {
	name, ok := strings.CutPrefix(key, "trading_options.")
	if !ok || name == "" || strings.Contains(name, ".") {
		return Location{}, false
	}
	return paramLocation(key, name), true
}

func paramLocation(key, name string) Location {
	return Location{
		Key: key,
		Path: []Segment{
			{Tag: "Strategy"},
			{Tag: "BuildTradingOptions"},
			{Tag: "Params"},
			{
				Tag:   "Param",
				Match: &Match{Attrs: []Attr{{"key", name}}},
				Stamp: []Attr{{"key", name}, {"class", "Generic"}},
			},
		},
		Kind: StringKind,
	}
}

func resolvePeriod(key string) (Location, bool) {
	rest, ok := strings.CutPrefix(key, "oos.period_")
	if !ok {
		return Location{}, false
	}
	num, field, ok := strings.Cut(rest, ".")
	if !ok {
		return Location{}, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 || num != strconv.Itoa(n) {
		return Location{}, false
	}
	switch field {
	case "from":
		return periodLocation(key, num, "From"), true
	case "to":
		return periodLocation(key, num, "To"), true
	}
	return Location{}, false
}

func periodLocation(key, index, field string) Location {
	return Location{
		Key: key,
		Path: []Segment{
			{Tag: "Strategy"},
			{Tag: "Data"},
			{Tag: "OutOfSample"},
			{
				Tag:   "Period",
				Match: &Match{Attrs: []Attr{{"index", index}}},
				Stamp: []Attr{{"index", index}},
			},
			{Tag: field},
		},
		Kind: DateKind,
	}
}

func resolveCondition(key string) (Location, bool) {
	rest, ok := strings.CutPrefix(key, "conditions.")
	if !ok {
		return Location{}, false
	}
	rest, enable := strings.CutSuffix(rest, ".enable")
	column, sample, ok := cutLast(rest, "_")
	if !ok {
		return Location{}, false
	}
	var sampleType string
	switch sample {
	case "IS":
		sampleType = "10"
	case "OOS":
		sampleType = "20"
	default:
		return Location{}, false
	}
	if !knownColumn(column) {
		return Location{}, false
	}
	return conditionLocation(key, column, sampleType, enable), true
}

func conditionLocation(key, column, sampleType string, enable bool) Location {
	cond := Segment{
		Tag: "Condition",
		Match: &Match{
			Path: []string{"Left-Side", "Column-Value"},
			Attrs: []Attr{
				{"column", column},
				{"sampleType", sampleType},
			},
		},
	}
	base := []Segment{
		{Tag: "Strategy"},
		{Tag: "FilterParams"},
		{Tag: "Conditions"},
		cond,
	}
	if enable {
		return Location{Key: key, Path: base, Attr: "use", Kind: BoolKind}
	}
	return Location{
		Key:  key,
		Path: append(base, Segment{Tag: "Right-Side"}, Segment{Tag: "Numeric-Value"}),
		Attr: "value",
		Kind: FloatKind,
	}
}

func knownColumn(name string) bool {
	for _, c := range conditionColumns {
		if c == name {
			return true
		}
	}
	return false
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
