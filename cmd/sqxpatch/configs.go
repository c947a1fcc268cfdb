package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Log   bool `cli:"name=log desc='log progress'"`
	Plain bool `cli:"name=plain desc='disable colored diff output'"`

	Main *cli.Command
}

// colorize reports whether diff output to w should carry ANSI colors:
// never under -plain, otherwise only when w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Plain {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ApplyConfig struct {
	*MainConfig
	Out    string `cli:"name=out aliases=o desc='output path (default out/<template>_<timestamp>.xml)'"`
	DryRun bool   `cli:"name=dry aliases=n desc='plan, diff, and write nothing'"`
	Verify bool   `cli:"name=verify desc='re-read the output and check every field'"`

	Apply *cli.Command
}

type PlanConfig struct {
	*MainConfig

	Plan *cli.Command
}

type KeysConfig struct {
	*MainConfig
	Section string `cli:"name=section aliases=s desc='only list keys under this section'"`

	Keys *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
