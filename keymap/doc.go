// Package keymap maps logical configuration keys to locations in the
// strategy template tree.
//
// # Usage
//
//	// Resolve a configuration key
//	loc, err := keymap.Resolve("build_mode.PopulationSize")
//
//	// List every recognized key
//	entries := keymap.All()
//
// The mapping is an immutable registry built once at package
// initialization. Adding a new editable field means adding one registry
// entry; no other code changes. Keys are globally unique and each
// location matches at most one node in the template.
//
// # Related Packages
//
//   - github.com/sqxtools/sqxpatch/template - ordered template tree
//   - github.com/sqxtools/sqxpatch/expand - derived-block expansion
package keymap
