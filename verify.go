package sqxpatch

import (
	"fmt"
	"strings"

	"github.com/sqxtools/sqxpatch/template"
)

// Verify re-reads every assignment out of doc and confirms the stored
// value. It is meant to run against a freshly re-parsed output file.
func Verify(doc *template.Doc, assignments []Assignment) error {
	for _, a := range assignments {
		el := find(doc.Root(), a.Loc)
		if el == nil {
			return fmt.Errorf("%w: %s: element not found", ErrVerify, a.Key)
		}
		var got string
		if a.Loc.Attr != "" {
			got = el.SelectAttrValue(a.Loc.Attr, "")
		} else {
			got = strings.TrimSpace(el.Text())
		}
		if got != a.Value {
			return fmt.Errorf("%w: %s: got %q, want %q", ErrVerify, a.Key, got, a.Value)
		}
	}
	return nil
}
