package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints the user-facing hint when there is one, the error
// otherwise.
func reportError(w io.Writer, err error) {
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintln(w, hint)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
