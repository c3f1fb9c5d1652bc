package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/cfdns/internal/client"
	"github.com/jroosing/cfdns/internal/console"
	"github.com/jroosing/cfdns/internal/logging"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	var (
		proxyURL = flag.String("proxy", "http://localhost:4000", "Base URL of the DNS proxy")
		timeout  = flag.Duration("timeout", client.DefaultTimeout, "Per-request timeout")
		debug    = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	level := "WARN"
	if *debug {
		level = "DEBUG"
	}
	logger := logging.Configure(logging.Config{Level: level})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	in := bufio.NewScanner(os.Stdin)
	prompt := ""
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = "cfdns> "
	}

	api := client.New(*proxyURL, *timeout)
	ctrl := console.New(api, console.LineConfirmer(in, os.Stdout), logger)
	shell := console.NewShell(ctrl, in, os.Stdout, prompt)

	start := time.Now()
	if err := shell.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "cfdnsctl: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("session ended", "duration", time.Since(start).Round(time.Second).String())
}
