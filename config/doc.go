// Package config loads the human-authored YAML configuration into an
// ordered set of dotted keys.
//
// # Usage
//
//	cfg, err := config.Load("changes.yaml")
//	for _, e := range cfg.Entries() {
//		// e.Key is "build_mode.Islands", e.Value its scalar value
//	}
//
// Nested sections flatten to dotted keys and document order is
// preserved, so planned changes report in the order the operator wrote
// them. The document is read-only input; it is never mutated.
//
// # Related Packages
//
//   - github.com/sqxtools/sqxpatch/keymap - resolves the flattened keys
package config
