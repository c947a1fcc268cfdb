package main

import (
	"fmt"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/sqxtools/sqxpatch/diffreport"
	"github.com/sqxtools/sqxpatch/template"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two templates", cli.ErrUsage)
	}
	before, err := normalized(args[0])
	if err != nil {
		return err
	}
	after, err := normalized(args[1])
	if err != nil {
		return err
	}
	ud, err := diffreport.Unified(before, after, filepath.Base(args[0]), filepath.Base(args[1]))
	if err != nil {
		return err
	}
	return diffreport.Render(cc.Out, ud, cfg.colorize(cc.Out))
}

// normalized parses and re-serializes a template so the diff always
// compares normalized forms, not raw file bytes.
func normalized(path string) ([]byte, error) {
	doc, err := template.Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Bytes()
}
