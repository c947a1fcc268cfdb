package diffreport

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified produces a unified diff between two serializations with three
// lines of context. File labels render as "a/<fromName>" and
// "b/<toName>". Equal inputs produce an empty string.
func Unified(before, after []byte, fromName, toName string) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + fromName,
		ToFile:   "b/" + toName,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}

// Change is one planned field write, for summary rendering.
type Change struct {
	Key   string
	Value string
}

var sectionTitles = map[string]string{
	"trading_options": "Trading Options",
	"build_mode":      "Build Mode",
	"slpt":            "SL/PT Options",
	"data_setup":      "Data Setup",
	"oos":             "Out-of-Sample Periods",
	"conditions":      "Filter Conditions",
}

// Summary renders changes grouped by configuration section, keeping
// input order within each group.
func Summary(changes []Change) string {
	var order []string
	groups := map[string][]Change{}
	for _, c := range changes {
		sec, _, _ := strings.Cut(c.Key, ".")
		if _, ok := groups[sec]; !ok {
			order = append(order, sec)
		}
		groups[sec] = append(groups[sec], c)
	}
	var b strings.Builder
	for i, sec := range order {
		if i > 0 {
			b.WriteByte('\n')
		}
		title := sectionTitles[sec]
		if title == "" {
			title = sec
		}
		fmt.Fprintf(&b, "%s:\n", title)
		for _, c := range groups[sec] {
			fmt.Fprintf(&b, "  - %s = %s\n", strings.TrimPrefix(c.Key, sec+"."), c.Value)
		}
	}
	return b.String()
}
