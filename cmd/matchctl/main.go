package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/matchbook/external/matchbook"
	"github.com/riskibarqy/matchbook/internal/platform/logging"
	"github.com/riskibarqy/matchbook/internal/platform/resilience"
)

const usage = `usage: matchctl [-server URL] [-password SECRET] [-timeout 10s] <command> [flags]

commands:
  list                                         show recorded matches
  add -date D -opponent O -score S [-scorers]  record a match
  update -id N -date D -opponent O -score S    replace a match
  delete -id N                                 remove a match
  next                                         show the next match
  set-next -date D -opponent O -time HH:MM     set the next match
  stats                                        show current stats
  add-stats -wins W -draws D -losses L -goals G -against A
  watch [-interval 5s]                         poll stats until interrupted

environment: MATCHBOOK_URL, MATCHBOOK_PASSWORD
`

var errUsage = errors.New("invalid usage")

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.NewConsole(logging.LevelWarn)
	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "matchctl: %v\n", describe(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, logger *logging.Logger) error {
	global := flag.NewFlagSet("matchctl", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	server := global.String("server", envOr("MATCHBOOK_URL", "http://localhost:5000"), "matchbook server base URL")
	password := global.String("password", os.Getenv("MATCHBOOK_PASSWORD"), "admin password")
	timeout := global.Duration("timeout", 10*time.Second, "per-request timeout")
	if err := global.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if global.NArg() == 0 {
		return errUsage
	}

	breaker := resilience.DefaultCircuitBreakerConfig()
	client := matchbook.NewClient(matchbook.ClientConfig{
		BaseURL:        *server,
		Timeout:        *timeout,
		Logger:         logger,
		CircuitBreaker: breaker,
	})
	c := &cli{session: matchbook.NewSession(client), password: *password, out: out, logger: logger}

	name, rest := global.Arg(0), global.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	return cmd(ctx, c, rest)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func describe(err error) string {
	var apiErr *matchbook.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s (HTTP %d)", apiErr.Message, apiErr.Status)
	}
	return err.Error()
}
