package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. Alerts have
// already been printed when errAlerted comes back.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := newRootCommand(in, out, errOut)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errAlerted) {
			fmt.Fprintln(errOut, alertStyle.Render("Error: ")+err.Error())
		}
		return 1
	}
	return 0
}
