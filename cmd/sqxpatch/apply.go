package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sqxtools/sqxpatch"
	"github.com/sqxtools/sqxpatch/diffreport"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: apply requires a template and a config", cli.ErrUsage)
	}
	p := &sqxpatch.Patcher{
		TemplatePath: args[0],
		ConfigPath:   args[1],
		OutPath:      cfg.Out,
		DryRun:       cfg.DryRun,
		Verify:       cfg.Verify,
	}
	res, err := p.Run()
	if err != nil {
		return err
	}
	if cfg.Log {
		theLog.Info("planned", "changes", len(res.Assignments), "template", args[0])
	}
	if cfg.DryRun {
		fmt.Fprint(cc.Out, diffreport.Summary(sqxpatch.Changes(res.Assignments)))
		fmt.Fprintln(cc.Out)
	}
	if err := diffreport.Render(cc.Out, res.Diff, cfg.colorize(cc.Out)); err != nil {
		return err
	}
	if cfg.DryRun {
		return nil
	}
	fmt.Fprintf(cc.Out, "wrote %s\n", res.OutPath)
	if cfg.Log {
		theLog.Info("wrote", "xml", res.OutPath, "diff", res.DiffPath)
	}
	return nil
}
