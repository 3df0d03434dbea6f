// Command vinci enumerates unordered rooted trees with N nodes and
// at most M leaves.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JanFalkin/vinci/internal/cli"
)

func main() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Fprintln(os.Stderr, "\nvinci: interrupted, exiting")
		os.Exit(130)
	}()

	os.Exit(cli.ExitCode(cli.Execute()))
}
