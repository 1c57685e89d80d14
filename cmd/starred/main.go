// SPDX-FileCopyrightText: Copyright 2023 Prasad Tengse
// SPDX-License-Identifier: MIT

// starred lists repositories starred by a GitHub user.
//
// It can either print them to the terminal or serve a small web UI.
//
//	starred repos octocat --page 2
//	starred user octocat
//	starred serve --addr 127.0.0.1:8080
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/tprasadtp/go-starred"
	"github.com/tprasadtp/go-starred/internal/config"
	"github.com/tprasadtp/go-starred/internal/router"
	"github.com/tprasadtp/go-starred/internal/view"
)

// errUsage is returned on invalid command line usage.
var errUsage = errors.New("invalid usage")

const usage = `starred - list repositories starred by a GitHub user.

Usage:
  starred repos <username> [--page N] [--json]
  starred user <username> [--json]
  starred serve [--addr ADDR]

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options are command line options.
type options struct {
	configFile string
	page       int
	json       bool
	cfg        *config.Config
}

// parse parses command line arguments. Configuration file is applied first,
// flags which were explicitly set override values from it.
func parse(args []string, stderr io.Writer) (*options, []string, error) {
	var (
		opts      options
		addr      string
		endpoint  string
		userAgent string
		logLevel  string
		noColor   bool
	)

	flagSet := pflag.NewFlagSet("starred", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprint(stderr, usage)
		flagSet.PrintDefaults()
	}

	flagSet.StringVarP(&opts.configFile, "config", "c", "", "path to YAML configuration file")
	flagSet.StringVar(&addr, "addr", config.DefaultAddr, "listen address for serve")
	flagSet.StringVar(&endpoint, "endpoint", "", "GitHub REST API endpoint")
	flagSet.StringVar(&userAgent, "user-agent", "", "user agent for API requests")
	flagSet.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flagSet.BoolVar(&noColor, "no-color", false, "disable colored output")
	flagSet.IntVarP(&opts.page, "page", "p", 1, "page of starred repositories")
	flagSet.BoolVar(&opts.json, "json", false, "print raw JSON response")

	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		cfg, err = config.LoadFile(opts.configFile)
		if err != nil {
			return nil, nil, err
		}
	}

	if flagSet.Changed("addr") {
		cfg.Addr = addr
	}
	if flagSet.Changed("endpoint") {
		cfg.Endpoint = endpoint
	}
	if flagSet.Changed("user-agent") {
		cfg.UserAgent = userAgent
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flagSet.Changed("no-color") {
		cfg.NoColor = noColor
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	opts.cfg = cfg
	return &opts, flagSet.Args(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, args, err := parse(args, stderr)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("%w: no command specified", errUsage)
	}

	level, _ := opts.cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	client, err := starred.NewClient(
		starred.WithEndpoint(opts.cfg.Endpoint),
		starred.WithUserAgent(opts.cfg.UserAgent),
		starred.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	command, args := args[0], args[1:]
	switch command {
	case "serve":
		if len(args) != 0 {
			return fmt.Errorf("%w: serve takes no arguments", errUsage)
		}
		listener, err := net.Listen("tcp", opts.cfg.Addr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", opts.cfg.Addr, err)
		}
		return serve(ctx, listener, client, logger)
	case "repos":
		if len(args) != 1 {
			return fmt.Errorf("%w: repos takes exactly one username", errUsage)
		}
		return repos(ctx, client, args[0], opts, stdout)
	case "user":
		if len(args) != 1 {
			return fmt.Errorf("%w: user takes exactly one username", errUsage)
		}
		return user(ctx, client, args[0], opts, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

// passthrough copies raw response body to w.
func passthrough(resp *http.Response, err error, w io.Writer) error {
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return err
	}

	_, err = io.Copy(w, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	return nil
}

func repos(ctx context.Context, client *starred.Client, username string, opts *options, w io.Writer) error {
	if opts.json {
		resp, err := client.FetchStarredRepos(ctx, username, opts.page)
		return passthrough(resp, err, w)
	}

	page, err := view.FetchPage(ctx, client, username, opts.page)
	if err != nil {
		return err
	}
	return view.NewTerminal(w, opts.cfg.NoColor).RenderPage(page)
}

func user(ctx context.Context, client *starred.Client, username string, opts *options, w io.Writer) error {
	if opts.json {
		resp, err := client.FetchUser(ctx, username)
		return passthrough(resp, err, w)
	}

	u, err := view.FetchUser(ctx, client, username)
	if err != nil {
		return err
	}
	return view.NewTerminal(w, opts.cfg.NoColor).RenderUser(u)
}

// serve serves web UI on listener until ctx is done. Requests in flight
// when ctx is done are allowed to complete. Listener is closed on return.
func serve(ctx context.Context, listener net.Listener, client *starred.Client, logger *slog.Logger) error {
	server := &http.Server{
		Handler:           router.New(view.NewHome(client, logger)),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		// Request contexts must outlive ctx, Shutdown drains them.
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	logger.LogAttrs(ctx, slog.LevelInfo, "Serving web UI",
		slog.String("addr", listener.Addr().String()),
		slog.String("endpoint", client.Endpoint()),
	)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.LogAttrs(context.Background(), slog.LevelInfo, "Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
