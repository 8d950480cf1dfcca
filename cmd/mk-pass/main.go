// Command mk-pass prints passwords that satisfy composition requirements.
package main

import (
	"crypto/rand"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(rand.Reader).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
