package main

import (
	"errors"
	"fmt"
	"os"

	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps preset problems to 2 and everything else to 1.
func exitCode(err error) int {
	var parseErr *glinterrors.ParseError
	var validationErr *glinterrors.ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) {
		return 2
	}
	return 1
}
