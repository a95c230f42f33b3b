// Package assert holds startup helpers for main packages.
package assert

import (
	"fmt"
	"os"
)

var exit = os.Exit

// Success returns v, or reports err on stderr and exits when err is set.
// Only for failures that leave the program nothing to do.
func Success[T any](v T, err error) T {
	if err != nil {
		fmt.Fprintf(os.Stderr, "shelf: %v\n", err)
		exit(1)
	}
	return v
}
