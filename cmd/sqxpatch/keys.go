package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/sqxtools/sqxpatch/expand"
	"github.com/sqxtools/sqxpatch/keymap"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: keys takes no arguments", cli.ErrUsage)
	}
	prefix := ""
	if cfg.Section != "" {
		prefix = cfg.Section + "."
	}
	for _, e := range keymap.All() {
		if prefix != "" && !strings.HasPrefix(e.Key, prefix) {
			continue
		}
		fmt.Fprintf(cc.Out, "%-36s %-7s %s\n", e.Key, e.Kind, e.Path)
	}
	if cfg.Section != "" {
		return nil
	}
	fmt.Fprintf(cc.Out, "\nderived forms:\n")
	for _, d := range expand.Directives() {
		fmt.Fprintf(cc.Out, "\t- %s = %s\n\t  %s\n", d.Key, d.Form, d.Desc)
	}
	return nil
}
