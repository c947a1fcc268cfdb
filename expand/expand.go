package expand

import (
	"fmt"
	"strings"
	"time"

	"github.com/sqxtools/sqxpatch/config"
	"github.com/sqxtools/sqxpatch/debug"
	"github.com/sqxtools/sqxpatch/keymap"
	"github.com/sqxtools/sqxpatch/template"
)

const dateLayout = keymap.DateLayout

// Configuration keys the expander consumes. They never reach the
// registry; only their expansion does.
const (
	KeySymbol          = "data_setup.symbol"
	KeyTimeframe       = "data_setup.timeframe"
	KeyRolling         = "data_setup.oos_rolling"
	KeySymbolTimeframe = "data_setup.symbol_timeframe"
)

// Expand rewrites the document's entries into the concrete assignments
// the upsert engine applies. Scalar keys pass through in document order;
// directive keys are replaced in place by their expansion. Expansion
// emits nothing on error.
func Expand(cfg *config.Document, doc *template.Doc) ([]config.Entry, error) {
	var (
		res      []config.Entry
		pairDone bool
	)
	for _, e := range cfg.Entries() {
		switch e.Key {
		case KeySymbol, KeyTimeframe:
			if pairDone {
				continue
			}
			ent, err := symbolTimeframe(cfg)
			if err != nil {
				return nil, err
			}
			res = append(res, ent)
			pairDone = true
		case KeyRolling:
			ents, err := rolling(cfg, doc, e.Value)
			if err != nil {
				return nil, err
			}
			res = append(res, ents...)
		default:
			res = append(res, e)
			if k, ok := strings.CutPrefix(e.Key, "conditions."); ok && !strings.HasSuffix(k, ".enable") {
				res = append(res, config.Entry{Key: e.Key + ".enable", Value: true})
			}
		}
	}
	return res, nil
}

// symbolTimeframe composes the Symbol write from the symbol/timeframe
// pair. The two keys must appear together.
func symbolTimeframe(cfg *config.Document) (config.Entry, error) {
	sv, sok := cfg.Get(KeySymbol)
	tv, tok := cfg.Get(KeyTimeframe)
	if !sok || !tok {
		have, missing := KeySymbol, KeyTimeframe
		if !sok {
			have, missing = KeyTimeframe, KeySymbol
		}
		return config.Entry{}, fmt.Errorf("%w: %s set without %s", ErrBadPair, have, missing)
	}
	sym, err := keymap.StringKind.Render(sv)
	if err != nil {
		return config.Entry{}, fmt.Errorf("%s: %w", KeySymbol, err)
	}
	tf, err := keymap.StringKind.Render(tv)
	if err != nil {
		return config.Entry{}, fmt.Errorf("%s: %w", KeyTimeframe, err)
	}
	return config.Entry{Key: KeySymbolTimeframe, Value: sym + "_" + tf}, nil
}

// rolling expands the rolling out-of-sample directive into indexed
// period date writes.
func rolling(cfg *config.Document, doc *template.Doc, v any) ([]config.Entry, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %v is not a directive string", ErrUnknownDirective, KeyRolling, v)
	}
	r, err := ParseRolling(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyRolling, err)
	}
	from, to, err := baseRange(cfg, doc)
	if err != nil {
		return nil, err
	}
	ranges, err := r.Ranges(from, to)
	if err != nil {
		return nil, err
	}
	if debug.Expand() {
		debug.Logf("expand %s over %s..%s: %d periods\n",
			s, from.Format(dateLayout), to.Format(dateLayout), len(ranges))
	}
	res := make([]config.Entry, 0, 2*len(ranges))
	for i, rg := range ranges {
		res = append(res,
			config.Entry{Key: fmt.Sprintf("oos.period_%d.from", i+1), Value: rg.From.Format(dateLayout)},
			config.Entry{Key: fmt.Sprintf("oos.period_%d.to", i+1), Value: rg.To.Format(dateLayout)},
		)
	}
	return res, nil
}

// baseRange determines the in-sample range the expansion rolls over: the
// value each endpoint will have after the patch, i.e. the configured
// date when set, else the template's current one.
func baseRange(cfg *config.Document, doc *template.Doc) (from, to time.Time, err error) {
	from, err = baseDate(cfg, doc, "data_setup.date_from", "Data/From")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err = baseDate(cfg, doc, "data_setup.date_to", "Data/To")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func baseDate(cfg *config.Document, doc *template.Doc, key, path string) (time.Time, error) {
	if v, ok := cfg.Get(key); ok {
		s, err := keymap.DateKind.Render(v)
		if err != nil {
			return time.Time{}, fmt.Errorf("%s: %w", key, err)
		}
		return time.Parse(dateLayout, s)
	}
	s := doc.Text(path)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: template has no %s and config does not set %s",
			ErrBadRange, path, key)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: template %s: %q is not a date", ErrBadRange, path, s)
	}
	return t, nil
}

// Directive describes one derived-block form for listing.
type Directive struct {
	Key  string
	Form string
	Desc string
}

// Directives returns the derived-block forms the expander recognizes.
func Directives() []Directive {
	return []Directive{
		{
			Key:  KeyRolling,
			Form: "rolling_<months>m_<count>",
			Desc: "roll <count> out-of-sample periods of <months> months over the data range",
		},
		{
			Key:  KeySymbol + ", " + KeyTimeframe,
			Form: "<symbol>, <timeframe>",
			Desc: "compose Symbol as <symbol>_<timeframe> (both keys required)",
		},
		{
			Key:  "conditions.<column>_<IS|OOS>",
			Form: "<number>",
			Desc: "set the filter condition value and switch the condition on",
		},
	}
}
