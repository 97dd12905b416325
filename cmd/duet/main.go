// Command duet runs register-machine programs alone, as a communicating
// pair, or in the coprocessor dialect.
package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
