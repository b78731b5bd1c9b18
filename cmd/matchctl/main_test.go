package main

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/matchbook/internal/infrastructure/account/sharedsecret"
	"github.com/riskibarqy/matchbook/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchbook/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchbook/internal/platform/logging"
	"github.com/riskibarqy/matchbook/internal/usecase"
)

func newServer(t *testing.T) string {
	t.Helper()

	authorizer, err := sharedsecret.New("letmein")
	if err != nil {
		t.Fatalf("new authorizer: %v", err)
	}
	handler := httpapi.NewHandler(
		usecase.NewAuthService(authorizer),
		usecase.NewMatchService(memory.NewMatchRepository(nil)),
		usecase.NewNextMatchService(memory.NewNextMatchStore(nil)),
		usecase.NewStatsService(memory.NewStatsLog(nil)),
		logging.NewNop(),
	)
	server := httptest.NewServer(httpapi.NewRouter(handler, authorizer, logging.NewNop(), nil))
	t.Cleanup(server.Close)
	return server.URL
}

func runCLI(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	full := append([]string{"-server", url, "-password", "letmein"}, args...)
	err := run(context.Background(), full, &out, logging.NewNop())
	return out.String(), err
}

func TestRun_MatchCommands(t *testing.T) {
	url := newServer(t)

	out, err := runCLI(t, url, "list")
	if err != nil || !strings.Contains(out, "no matches recorded") {
		t.Fatalf("list on empty store: out=%q err=%v", out, err)
	}

	out, err = runCLI(t, url, "add", "-date", "2024-05-01", "-opponent", "Rovers", "-score", "2-1", "-scorers", "Smith")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "match 1 added") || !strings.Contains(out, "Rovers") {
		t.Fatalf("unexpected add output: %q", out)
	}

	out, err = runCLI(t, url, "update", "-id", "1", "-date", "2024-05-01", "-opponent", "Rovers", "-score", "3-1")
	if err != nil || !strings.Contains(out, "3-1") {
		t.Fatalf("update: out=%q err=%v", out, err)
	}

	if _, err := runCLI(t, url, "delete", "-id", "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = runCLI(t, url, "delete", "-id", "1")
	if err == nil || describe(err) != "Match not found (HTTP 404)" {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestRun_NextMatchAndStats(t *testing.T) {
	url := newServer(t)

	out, err := runCLI(t, url, "next")
	if err != nil || !strings.Contains(out, "no next match scheduled") {
		t.Fatalf("next on empty store: out=%q err=%v", out, err)
	}

	out, err = runCLI(t, url, "set-next", "-date", "2024-06-01", "-opponent", "United", "-time", "15:00")
	if err != nil || !strings.Contains(out, "2024-06-01 vs United at 15:00") {
		t.Fatalf("set-next: out=%q err=%v", out, err)
	}

	out, err = runCLI(t, url, "stats")
	if err != nil || !strings.Contains(out, "W 0  D 0  L 0  GF 0  GA 0") {
		t.Fatalf("stats default: out=%q err=%v", out, err)
	}

	out, err = runCLI(t, url, "add-stats", "-wins", "1", "-goals", "3", "-against", "1")
	if err != nil || !strings.Contains(out, "W 1  D 0  L 0  GF 3  GA 1") {
		t.Fatalf("add-stats: out=%q err=%v", out, err)
	}

	_, err = runCLI(t, url, "add-stats", "-wins", "-1")
	if err == nil || describe(err) != "Stats cannot be negative (HTTP 400)" {
		t.Fatalf("expected negative stats rejection, got %v", err)
	}
}

func TestRun_Usage(t *testing.T) {
	url := newServer(t)

	if _, err := runCLI(t, url); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error without command, got %v", err)
	}
	if _, err := runCLI(t, url, "explode"); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error for unknown command, got %v", err)
	}
	if _, err := runCLI(t, url, "add", "-bogus"); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error for unknown flag, got %v", err)
	}

	var out bytes.Buffer
	err := run(context.Background(), []string{"-server", url, "-password", "nope", "delete", "-id", "1"}, &out, logging.NewNop())
	if err == nil || describe(err) != "Forbidden: Invalid password (HTTP 403)" {
		t.Fatalf("expected login failure, got %v", err)
	}
}
