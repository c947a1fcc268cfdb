// Package diffreport renders what a patch run changed.
//
// # Usage
//
//	// Unified diff between two serializations
//	diff, err := diffreport.Unified(before, after, "tpl.xml", "out.xml")
//
//	// Write it, colorized for a terminal
//	err = diffreport.Render(os.Stdout, diff, true)
//
//	// Human summary of planned changes
//	fmt.Print(diffreport.Summary(changes))
//
// A diff always compares two in-memory serializations of the same
// template tree, never raw input bytes, so encoding normalization done
// at parse time never shows up as a change.
//
// # Related Packages
//
//   - github.com/sqxtools/sqxpatch - planning and applying patches
package diffreport
