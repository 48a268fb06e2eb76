// Package main provides the CLI entrypoint for prop-caster.
//
// prop-caster is a runtime struct-to-struct property mapper configured
// either fluently in code or through YAML/JSON profile files. The CLI
// covers the file side:
//   - lint: parse a profile file and report structural diagnostics
package main

import (
	"fmt"
	"os"

	"prop-caster/profile"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	default:
		usage()
		os.Exit(2)

	case "lint":
		if len(os.Args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: prop-caster lint <profile-file>")
			os.Exit(2)
		}

		os.Exit(lint(os.Args[2]))
	}
}

func lint(path string) int {
	f, err := profile.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	diags := profile.Validate(f)

	for _, d := range diags.Errors {
		fmt.Println(d.String())
	}

	for _, d := range diags.Warnings {
		fmt.Println(d.String())
	}

	if diags.HasErrors() {
		return 1
	}

	fmt.Printf("%s: ok (%d profile(s), %d warning(s))\n", path, len(f.Profiles), len(diags.Warnings))

	return 0
}

func usage() {
	fmt.Println("prop-caster - a runtime struct-to-struct property mapper")
	fmt.Println("Commands: lint <profile-file>")
}
