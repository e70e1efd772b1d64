package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func setGameEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		"ROWS", "COLUMNS", "TOKEN_EMPTY", "TOKEN_P1", "TOKEN_P2", "PLAYER1_TYPE", "PLAYER2_TYPE",
		"BOT_DELAY_MS", "WATCH_PORT", "REDIS_URL", "KAFKA_BROKERS",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_QUIET", "true")
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestChoosePlayer(t *testing.T) {
	var out bytes.Buffer
	prompter := console.NewPrompter(strings.NewReader("h\n"), &out)

	p, err := choosePlayer(prompter, 1, "c", 0)
	if err != nil || p.Kind() != domain.Automated {
		t.Fatalf("expected configured computer player, got %v (%v)", p, err)
	}
	if out.Len() != 0 {
		t.Fatalf("configured player should not prompt, got %q", out.String())
	}

	p, err = choosePlayer(prompter, 2, "", 0)
	if err != nil || p.Kind() != domain.Human {
		t.Fatalf("expected prompted human player, got %v (%v)", p, err)
	}
	if !strings.Contains(out.String(), "Choose type for player 2") {
		t.Fatalf("expected a prompt, got %q", out.String())
	}
}

func TestRunComputerVersusComputer(t *testing.T) {
	setGameEnv(t, map[string]string{"PLAYER1_TYPE": "c", "PLAYER2_TYPE": "c"})

	var out bytes.Buffer
	if code := run(strings.NewReader(""), &out); code != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", code, out.String())
	}
	got := out.String()
	if !strings.HasPrefix(got, "Connect Four (6 rows x 7 cols)\n") {
		t.Fatalf("missing banner:\n%s", got)
	}
	if !strings.Contains(got, "Computer chose column 4\n") {
		t.Fatalf("expected a center opening:\n%s", got)
	}
	if !strings.Contains(got, "wins!") && !strings.Contains(got, "It's a tie!") {
		t.Fatalf("expected an outcome line:\n%s", got)
	}
}

func TestRunHumanInputEnds(t *testing.T) {
	setGameEnv(t, map[string]string{"PLAYER2_TYPE": "c"})

	var out bytes.Buffer
	if code := run(strings.NewReader("h\n4\n"), &out); code != 1 {
		t.Fatalf("expected exit code 1 on closed input, got %d", code)
	}
	if !strings.HasSuffix(out.String(), "Input closed. Exiting.\n") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	setGameEnv(t, map[string]string{"ROWS": "0"})

	if code := run(strings.NewReader(""), io.Discard); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}
