package diffreport

import (
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	headColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	hunkColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	delColor  = color.New(color.FgRed).SprintFunc()
	insColor  = color.New(color.FgGreen).SprintFunc()
	delMark   = color.New(color.FgRed, color.Bold).SprintFunc()
	insMark   = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Render writes diff to w. With colorize set, file headers, hunk
// markers, and changed lines take ANSI colors; a delete run paired with
// an equal-length insert run additionally bolds the spans that differ
// within each line.
func Render(w io.Writer, diff string, colorize bool) error {
	if !colorize || diff == "" {
		_, err := io.WriteString(w, diff)
		return err
	}
	lines := strings.Split(diff, "\n")
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			out = append(out, headColor(line))
		case strings.HasPrefix(line, "@@"):
			out = append(out, hunkColor(line))
		case strings.HasPrefix(line, "-"):
			dels := []string{line}
			for i+1 < len(lines) && strings.HasPrefix(lines[i+1], "-") {
				i++
				dels = append(dels, lines[i])
			}
			var inss []string
			for i+1 < len(lines) && strings.HasPrefix(lines[i+1], "+") {
				i++
				inss = append(inss, lines[i])
			}
			out = append(out, renderRun(dels, inss)...)
		case strings.HasPrefix(line, "+"):
			out = append(out, insColor(line))
		default:
			out = append(out, line)
		}
	}
	_, err := io.WriteString(w, strings.Join(out, "\n"))
	return err
}

func renderRun(dels, inss []string) []string {
	out := make([]string, 0, len(dels)+len(inss))
	if len(dels) != len(inss) {
		for _, d := range dels {
			out = append(out, delColor(d))
		}
		for _, n := range inss {
			out = append(out, insColor(n))
		}
		return out
	}
	hi := make([]string, len(inss))
	for i := range dels {
		d, n := highlightPair(dels[i][1:], inss[i][1:])
		out = append(out, delColor("-")+d)
		hi[i] = insColor("+") + n
	}
	return append(out, hi...)
}

// highlightPair colors the bodies of a matched -/+ line pair, bolding
// the spans that changed between them.
func highlightPair(del, ins string) (string, string) {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(del, ins, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var db, ib strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			db.WriteString(delColor(d.Text))
			ib.WriteString(insColor(d.Text))
		case diffpatch.DiffDelete:
			db.WriteString(delMark(d.Text))
		case diffpatch.DiffInsert:
			ib.WriteString(insMark(d.Text))
		}
	}
	return db.String(), ib.String()
}
