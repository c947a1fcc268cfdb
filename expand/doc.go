// Package expand turns compact configuration directives into the
// concrete key/value assignments the upsert engine applies.
//
// # Usage
//
//	entries, err := expand.Expand(cfg, doc)
//
// Scalar keys pass through in document order; directive keys are
// replaced in place by their expansion. The rolling out-of-sample
// directive ("rolling_3m_10") becomes indexed period date pairs, the
// symbol/timeframe pair becomes one composite Symbol write, and each
// filter-condition key gains the write that switches its condition on.
// Directives are expanded once per run and never persist in the output
// tree.
//
// # Related Packages
//
//   - github.com/sqxtools/sqxpatch/config - source document
//   - github.com/sqxtools/sqxpatch/keymap - resolves expanded keys
package expand
