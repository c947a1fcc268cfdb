package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sqxtools/sqxpatch"
	"github.com/sqxtools/sqxpatch/config"
	"github.com/sqxtools/sqxpatch/diffreport"
	"github.com/sqxtools/sqxpatch/template"
)

func plan(cfg *PlanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Plan.Parse(cc, args)
	if err != nil {
		cfg.Plan.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: plan requires a template and a config", cli.ErrUsage)
	}
	doc, err := template.Load(args[0])
	if err != nil {
		return err
	}
	c, err := config.Load(args[1])
	if err != nil {
		return err
	}
	assignments, err := sqxpatch.Plan(doc, c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cc.Out, diffreport.Summary(sqxpatch.Changes(assignments)))
	return err
}
