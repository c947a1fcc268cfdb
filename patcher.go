package sqxpatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sqxtools/sqxpatch/config"
	"github.com/sqxtools/sqxpatch/debug"
	"github.com/sqxtools/sqxpatch/diffreport"
	"github.com/sqxtools/sqxpatch/template"
)

// Patcher runs the patch pipeline for one template/config pair.
type Patcher struct {
	TemplatePath string
	ConfigPath   string
	// OutPath overrides the default out/<template stem>_<timestamp>.xml.
	OutPath string
	// DryRun plans, applies, and diffs in memory without touching disk.
	DryRun bool
	// Verify re-reads the patched output and checks every assignment.
	Verify bool

	// Timestamp stamps the default output name. Zero means now.
	Timestamp time.Time
}

// Result reports what a run did, or would do under DryRun.
type Result struct {
	Assignments []Assignment
	Before      []byte
	After       []byte
	Diff        string
	OutPath     string
	DiffPath    string
}

// Run loads both inputs, plans every assignment, applies the plan in
// memory, and writes the patched template next to its diff. Any failure
// before the write stage leaves the filesystem untouched.
func (p *Patcher) Run() (*Result, error) {
	doc, err := template.Load(p.TemplatePath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		return nil, err
	}
	assignments, err := Plan(doc, cfg)
	if err != nil {
		return nil, err
	}
	before, err := doc.Bytes()
	if err != nil {
		return nil, err
	}
	if err := Apply(doc, assignments); err != nil {
		return nil, err
	}
	after, err := doc.Bytes()
	if err != nil {
		return nil, err
	}
	res := &Result{
		Assignments: assignments,
		Before:      before,
		After:       after,
		OutPath:     p.outPath(),
	}
	res.DiffPath = strings.TrimSuffix(res.OutPath, filepath.Ext(res.OutPath)) + ".diff"
	res.Diff, err = diffreport.Unified(before, after, filepath.Base(p.TemplatePath), filepath.Base(res.OutPath))
	if err != nil {
		return nil, err
	}
	if p.DryRun {
		if p.Verify {
			if err := Verify(doc, assignments); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	if dir := filepath.Dir(res.OutPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := commitFiles(res.OutPath, after, res.DiffPath, []byte(res.Diff)); err != nil {
		return nil, err
	}
	if debug.Write() {
		debug.Logf("wrote %s and %s\n", res.OutPath, res.DiffPath)
	}
	if p.Verify {
		out, err := template.Load(res.OutPath)
		if err != nil {
			return nil, err
		}
		if err := Verify(out, assignments); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Changes projects assignments into summary form.
func Changes(assignments []Assignment) []diffreport.Change {
	res := make([]diffreport.Change, len(assignments))
	for i, a := range assignments {
		res[i] = diffreport.Change{Key: a.Key, Value: a.Value}
	}
	return res
}

func (p *Patcher) outPath() string {
	if p.OutPath != "" {
		return p.OutPath
	}
	ts := p.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	base := filepath.Base(p.TemplatePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join("out", fmt.Sprintf("%s_%s.xml", stem, ts.Format("2006-01-02T15-04")))
}

// commitFiles lands the patched template and its diff. Both are staged
// as temp files first and renamed only after both writes succeed, XML
// before diff, so a diff on disk always marks a completed run.
func commitFiles(xmlPath string, xml []byte, diffPath string, diff []byte) error {
	xmlTmp, err := stageFile(xmlPath, xml)
	if err != nil {
		return err
	}
	diffTmp, err := stageFile(diffPath, diff)
	if err != nil {
		_ = os.Remove(xmlTmp)
		return err
	}
	if err := os.Rename(xmlTmp, xmlPath); err != nil {
		_ = os.Remove(xmlTmp)
		_ = os.Remove(diffTmp)
		return fmt.Errorf("rename temp to %s: %w", xmlPath, err)
	}
	if err := os.Rename(diffTmp, diffPath); err != nil {
		_ = os.Remove(diffTmp)
		return fmt.Errorf("rename temp to %s: %w", diffPath, err)
	}
	return nil
}

// stageFile writes data to a temp file next to path and returns the
// temp name, ready to rename into place.
func stageFile(path string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".sqxpatch-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("close temp: %w", err)
	}
	_ = os.Chmod(tmpName, 0o644)
	return tmpName, nil
}
