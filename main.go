// rootsv is a minimal PID 1 / per-user session supervision root.
//
// Run with no arguments it performs one-shot boot bring-up, spawns and
// reaps the service manager and its logger, and arbitrates signal- and
// FIFO-driven state transitions until a terminal verb is latched.
//
// Commands:
//
//	version - Print version information
//	usage   - List the out-of-scope dispatch-table personalities
package main

import (
	"fmt"
	"os"

	"rootsv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
