package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "sqxpatch").
		WithSynopsis("sqxpatch [opts] command [opts]").
		WithDescription("sqxpatch patches StrategyQuant X strategy templates from yaml configs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sqxMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			PlanCommand(cfg),
			KeysCommand(cfg),
			DiffCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [opts] <template.xml> <config.yaml>").
		WithDescription("patch a strategy template with a yaml config").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

func PlanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PlanConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Plan, "plan").
		WithAliases("p", "pl").
		WithSynopsis("plan <template.xml> <config.yaml>").
		WithDescription("show the writes a config would make, without applying them").
		WithRun(func(cc *cli.Context, args []string) error {
			return plan(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [-section <name>]").
		WithDescription("list the configuration keys the patcher understands").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff <before.xml> <after.xml>").
		WithDescription("diff two strategy templates").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
