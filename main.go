package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rrosajp/poium/cli"
	"github.com/rrosajp/poium/commands"
)

func main() {
	// setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// run command in goroutine
	done := make(chan error, 1)
	go func() {
		done <- cli.Execute()
	}()

	// wait for command completion or signal
	select {
	case <-sigChan:
		// delete remote driver sessions on signal
		commands.CloseAll()
		os.Exit(0)
	case err := <-done:
		// normal exit: close any sessions we opened
		commands.CloseAll()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
