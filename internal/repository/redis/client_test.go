package redis

import (
	"context"
	"io"
	"log"
	"os"
	"testing"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestNewOptions(t *testing.T) {
	opts, err := newOptions("localhost:6379", "secret")
	if err != nil || opts.Addr != "localhost:6379" || opts.Password != "secret" {
		t.Fatalf("unexpected plain options %+v (%v)", opts, err)
	}

	opts, err = newOptions("redis://:fromurl@cache:6380/2", "")
	if err != nil || opts.Addr != "cache:6380" || opts.DB != 2 || opts.Password != "fromurl" {
		t.Fatalf("unexpected URL options %+v (%v)", opts, err)
	}

	opts, err = newOptions("redis://:fromurl@cache:6380/2", "override")
	if err != nil || opts.Password != "override" {
		t.Fatalf("expected REDIS_PASSWORD to win, got %+v (%v)", opts, err)
	}

	if _, err := newOptions("redis://cache:6380/notadb", ""); err == nil {
		t.Fatalf("expected an invalid URL to be rejected")
	}
}

func TestUnreachableRedisDisablesPublisher(t *testing.T) {
	p, err := NewPublisher(context.Background(), "127.0.0.1:1", "", "connect4:events")
	if err != nil {
		t.Fatalf("NewPublisher: %v", err)
	}
	defer p.Close()

	if p.IsEnabled() {
		t.Fatalf("expected the publisher to be disabled")
	}
	if err := p.Publish(context.Background(), domain.ServerMessage{Type: domain.MessageMove}); err != nil {
		t.Fatalf("disabled publisher should drop events silently, got %v", err)
	}
}

func TestNilPublisherIsSafe(t *testing.T) {
	var p *Publisher
	if p.IsEnabled() || p.Close() != nil {
		t.Fatalf("nil publisher should be disabled")
	}
	if err := p.Publish(context.Background(), domain.ServerMessage{}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}
