// Package template loads, serializes and normalizes strategy template
// XML.
//
// # Usage
//
//	// Load a template file
//	doc, err := template.Load("Mean-Reversal.xml")
//
//	// Serialize it back
//	out, err := doc.Bytes()
//
// Loading preserves tag order, attribute order, comments and the XML
// declaration, so a serialized document differs from its input only
// where it was deliberately mutated. Raw input may be UTF-8 or
// Windows-1252; it is normalized to UTF-8 before parsing.
//
// # Related Packages
//
//   - github.com/sqxtools/sqxpatch/keymap - key to location mapping
package template
