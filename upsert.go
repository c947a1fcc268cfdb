package sqxpatch

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/sqxtools/sqxpatch/debug"
	"github.com/sqxtools/sqxpatch/keymap"
	"github.com/sqxtools/sqxpatch/template"
)

// Apply writes every assignment into the tree. Existing targets keep
// their sibling attributes and child order; missing path elements are
// created at the slot the schema implies. Applying the same assignments
// again is byte-stable.
func Apply(doc *template.Doc, assignments []Assignment) error {
	for _, a := range assignments {
		el, err := ensure(doc.Root(), a.Loc)
		if err != nil {
			return fmt.Errorf("%s: %w", a.Key, err)
		}
		if a.Loc.Attr != "" {
			el.CreateAttr(a.Loc.Attr, a.Value)
		} else {
			el.SetText(a.Value)
		}
	}
	return nil
}

// find returns the element at loc, or nil when any step is missing.
func find(root *etree.Element, loc keymap.Location) *etree.Element {
	first := loc.Path[0]
	if root == nil || root.Tag != first.Tag || !matches(root, first.Match) {
		return nil
	}
	el := root
	for _, seg := range loc.Path[1:] {
		el = child(el, seg)
		if el == nil {
			return nil
		}
	}
	return el
}

// ensure resolves loc, creating missing elements along the way.
func ensure(root *etree.Element, loc keymap.Location) (*etree.Element, error) {
	first := loc.Path[0]
	if root == nil || root.Tag != first.Tag {
		tag := "nothing"
		if root != nil {
			tag = root.Tag
		}
		return nil, fmt.Errorf("%w: root element is <%s>, want <%s>", ErrSchema, tag, first.Tag)
	}
	el := root
	for _, seg := range loc.Path[1:] {
		next := child(el, seg)
		if next == nil {
			next = createChild(el, seg)
		}
		el = next
	}
	return el, nil
}

func child(parent *etree.Element, seg keymap.Segment) *etree.Element {
	for _, ch := range parent.ChildElements() {
		if ch.Tag == seg.Tag && matches(ch, seg.Match) {
			return ch
		}
	}
	return nil
}

func matches(el *etree.Element, m *keymap.Match) bool {
	if m == nil {
		return true
	}
	t := el
	for _, tag := range m.Path {
		t = t.SelectElement(tag)
		if t == nil {
			return false
		}
	}
	for _, a := range m.Attrs {
		attr := t.SelectAttr(a.Name)
		if attr == nil || attr.Value != a.Value {
			return false
		}
	}
	return true
}

// createChild materializes seg under parent. The new element carries its
// stamp attributes and whatever descendant chain its match predicate
// names, so the next run resolves it instead of creating another.
func createChild(parent *etree.Element, seg keymap.Segment) *etree.Element {
	if debug.Apply() {
		debug.Logf("create <%s> under <%s>\n", seg.Tag, parent.Tag)
	}
	el := etree.NewElement(seg.Tag)
	for _, a := range seg.Stamp {
		el.CreateAttr(a.Name, a.Value)
	}
	if seg.Match != nil && len(seg.Match.Path) > 0 {
		t := el
		for _, tag := range seg.Match.Path {
			sub := etree.NewElement(tag)
			t.AddChild(sub)
			t = sub
		}
		for _, a := range seg.Match.Attrs {
			t.CreateAttr(a.Name, a.Value)
		}
	}
	insertAt(parent, el, seg)
	return el
}

// insertAt places el under parent. Same-tag siblings carrying a numeric
// index stamp stay ordered by index; otherwise el goes before the first
// sibling the schema orders later, else last.
func insertAt(parent, el *etree.Element, seg keymap.Segment) {
	if idx, ok := indexStamp(seg); ok {
		for _, sib := range parent.ChildElements() {
			if sib.Tag != seg.Tag {
				continue
			}
			sibIdx, err := strconv.Atoi(sib.SelectAttrValue("index", ""))
			if err == nil && sibIdx > idx {
				parent.InsertChildAt(sib.Index(), el)
				return
			}
		}
		parent.AddChild(el)
		return
	}
	if slot := keymap.SlotIndex(parent.Tag, seg.Tag); slot >= 0 {
		for _, sib := range parent.ChildElements() {
			if sibSlot := keymap.SlotIndex(parent.Tag, sib.Tag); sibSlot > slot {
				parent.InsertChildAt(sib.Index(), el)
				return
			}
		}
	}
	parent.AddChild(el)
}

func indexStamp(seg keymap.Segment) (int, bool) {
	for _, a := range seg.Stamp {
		if a.Name != "index" {
			continue
		}
		if n, err := strconv.Atoi(a.Value); err == nil {
			return n, true
		}
	}
	return 0, false
}
