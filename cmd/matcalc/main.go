// SPDX-License-Identifier: MIT

// Command matcalc runs matrix operations on grids stored in YAML or TOML files.
//
//	matcalc det -f a.yaml
//	matcalc mul -f a.yaml -g b.toml --pretty
//	matcalc scale -f a.yaml -k 2.5 --precision 3
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
