// Command cleancore validates catalogue records and classifies bird species.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd, a := newRootCmd(os.Getenv)
	cmd.SetArgs(args)
	if err := a.execute(cmd); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
