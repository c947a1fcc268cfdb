package template

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// Doc is a loaded template document: an ordered, mutable XML tree owned
// by a single run.
type Doc struct {
	doc *etree.Document
}

// Parse normalizes raw template bytes and parses them into a Doc.
func Parse(raw []byte) (*Doc, error) {
	text, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	// the input is UTF-8 after Normalize, whatever the declaration claims
	doc.ReadSettings.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := doc.ReadFromBytes(text); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return &Doc{doc: doc}, nil
}

// Load reads and parses the template at path.
func Load(path string) (*Doc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Bytes serializes the document. Serialization is deterministic:
// identical trees produce identical bytes.
func (d *Doc) Bytes() ([]byte, error) {
	return d.doc.WriteToBytes()
}

// Root returns the document's root element.
func (d *Doc) Root() *etree.Element {
	return d.doc.Root()
}

// Text returns the trimmed text content of the element at the given
// root-relative path ("Data/From"), or "" when the element is absent.
func (d *Doc) Text(path string) string {
	el := d.doc.Root().FindElement("./" + path)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}
