package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yanqian/svatek/internal/bootstrap"
)

func main() {
	once := flag.Bool("once", false, "refresh the board once, print it and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("failed to wire application: %v", err)
	}

	if *once {
		code := printBoard(ctx, app, os.Stdout)
		stop()
		os.Exit(code)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBoard refreshes once and writes the board to out. A failed refresh
// prints the unchanged board followed by the alert and exits non-zero.
func printBoard(ctx context.Context, app *bootstrap.App, out io.Writer) int {
	state, err := app.RefreshOnce(ctx)
	for _, line := range state.Display.Lines() {
		fmt.Fprintln(out, line)
	}
	if err == nil {
		return 0
	}
	if state.Alert != nil {
		fmt.Fprintf(out, "%s: %s\n", state.Alert.Title, state.Alert.Message)
	} else {
		fmt.Fprintf(out, "error: %v\n", err)
	}
	return 1
}
