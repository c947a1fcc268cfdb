package keymap

import (
	"fmt"
	"strings"
)

// Attr is a named attribute value.
type Attr struct {
	Name  string
	Value string
}

// Match narrows segment resolution to elements satisfying an attribute
// predicate. When Path is non-empty the predicate is evaluated on the
// named descendant of the candidate element rather than on the candidate
// itself.
type Match struct {
	Path  []string
	Attrs []Attr
}

// Segment is one step in a location path. Stamp holds the attributes set
// on the element when the upsert engine has to create it; a created
// element always satisfies its own Match so repeated runs find it again.
type Segment struct {
	Tag   string
	Match *Match
	Stamp []Attr
}

// Location describes the single node and write target a logical key maps
// to: an unambiguous path from the tree root plus either an attribute
// name or the element's text content.
type Location struct {
	Key  string
	Path []Segment
	Attr string // attribute written at the final element; empty writes text
	Kind Kind
}

// String renders the location as a path expression, e.g.
//
//	Strategy/BuildTradingOptions/Params/Param[@key='MaxTradesPerDay']
//	Strategy/FilterParams/Conditions/Condition[Left-Side/Column-Value[@column='NetProfit'][@sampleType='10']]/Right-Side/Numeric-Value/@value
func (l Location) String() string {
	var sb strings.Builder
	for i, seg := range l.Path {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(seg.String())
	}
	if l.Attr != "" {
		fmt.Fprintf(&sb, "/@%s", l.Attr)
	}
	return sb.String()
}

func (s Segment) String() string {
	if s.Match == nil {
		return s.Tag
	}
	var attrs strings.Builder
	for _, a := range s.Match.Attrs {
		fmt.Fprintf(&attrs, "[@%s='%s']", a.Name, a.Value)
	}
	if len(s.Match.Path) == 0 {
		return s.Tag + attrs.String()
	}
	return s.Tag + "[" + strings.Join(s.Match.Path, "/") + attrs.String() + "]"
}
