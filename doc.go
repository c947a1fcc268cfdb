// Package sqxpatch patches StrategyQuant X strategy templates from YAML
// configuration documents.
//
// # Usage
//
//	p := &sqxpatch.Patcher{
//		TemplatePath: "Mean-Reversal.xml",
//		ConfigPath:   "changes.yaml",
//	}
//	res, err := p.Run()
//
// A run moves through fixed stages: load, plan (validate and expand),
// apply, serialize, report. Each stage's failure halts the run before
// the next begins; there is no partial application. Applying the same
// configuration twice yields byte-identical output.
//
// # Related Packages
//
//   - github.com/sqxtools/sqxpatch/keymap - key to location registry
//   - github.com/sqxtools/sqxpatch/template - ordered template tree
//   - github.com/sqxtools/sqxpatch/config - configuration document
//   - github.com/sqxtools/sqxpatch/expand - derived-block expansion
//   - github.com/sqxtools/sqxpatch/diffreport - unified diff reporting
package sqxpatch
