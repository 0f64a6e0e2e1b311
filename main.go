package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/conneroisu/expressor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Reported {
				fmt.Fprintln(os.Stderr, "Error:", exitErr.Error())
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
