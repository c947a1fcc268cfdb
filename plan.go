package sqxpatch

import (
	"fmt"

	"github.com/sqxtools/sqxpatch/config"
	"github.com/sqxtools/sqxpatch/debug"
	"github.com/sqxtools/sqxpatch/expand"
	"github.com/sqxtools/sqxpatch/keymap"
	"github.com/sqxtools/sqxpatch/template"
)

// Assignment is one planned write: a resolved location and the rendered
// value it receives.
type Assignment struct {
	Key   string
	Loc   keymap.Location
	Value string
}

// Plan validates the configuration against the template and returns the
// ordered assignments the upsert engine would apply. Every leaf key must
// resolve through the registry after derived-block expansion; an unknown
// key, a value that does not fit its location's kind, or a failed
// expansion aborts the whole run with nothing applied.
func Plan(doc *template.Doc, cfg *config.Document) ([]Assignment, error) {
	if root := doc.Root(); root.Tag != keymap.RootTag {
		return nil, fmt.Errorf("%w: root element is <%s>, want <%s>", ErrSchema, root.Tag, keymap.RootTag)
	}
	entries, err := expand.Expand(cfg, doc)
	if err != nil {
		return nil, err
	}
	res := make([]Assignment, 0, len(entries))
	for _, e := range entries {
		loc, err := keymap.Resolve(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := loc.Kind.Render(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Key, err)
		}
		res = append(res, Assignment{Key: e.Key, Loc: loc, Value: v})
	}
	if debug.Plan() {
		for _, a := range res {
			debug.Logf("plan %s = %q at %s\n", a.Key, a.Value, a.Loc)
		}
	}
	return res, nil
}
