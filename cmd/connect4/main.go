package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/repository/kafka"
	"github.com/iamasit07/4-in-a-row/console/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	transportHttp "github.com/iamasit07/4-in-a-row/console/internal/transport/http"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/websocket"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// How long a blocked console read may delay exit after an interrupt.
const interruptGrace = 2 * time.Second

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

func run(stdin io.Reader, stdout io.Writer) int {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("[CONFIG] No .env file found")
		}
	}

	cfg := config.LoadConfig()
	if cfg.LogQuiet {
		log.SetOutput(io.Discard)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	empty, p1, p2 := cfg.Symbols()
	view := console.NewView(stdout, console.Symbols{Empty: empty, Player1: p1, Player2: p2})
	prompter := console.NewPrompter(stdin, stdout)
	view.Banner(cfg.Settings)

	player1, err := choosePlayer(prompter, 1, cfg.Player1Type, cfg.BotDelay)
	if err != nil {
		fmt.Fprintln(stdout, "\nInput closed. Exiting.")
		return 1
	}
	player2, err := choosePlayer(prompter, 2, cfg.Player2Type, cfg.BotDelay)
	if err != nil {
		fmt.Fprintln(stdout, "\nInput closed. Exiting.")
		return 1
	}

	sessionManager := game.NewSessionManager()
	publishers := []game.Publisher{sessionManager}

	// Spectator server
	if cfg.WatchPort != "" {
		connManager := websocket.NewConnectionManager()
		publishers = append(publishers, connManager)
		srv := startWatchServer(cfg, sessionManager, connManager)
		defer shutdownWatchServer(srv, connManager)
	}

	// Event sinks
	if cfg.RedisURL != "" {
		redisPublisher, err := redis.NewPublisher(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.RedisChannel)
		if err != nil {
			log.Printf("[REDIS] Failed to initialize Redis: %v", err)
		} else {
			defer redisPublisher.Close()
			if redisPublisher.IsEnabled() {
				publishers = append(publishers, redisPublisher)
			}
		}
	}
	if brokers := kafka.ParseBrokers(cfg.KafkaBrokers); len(brokers) > 0 {
		producer := kafka.NewProducer(brokers, cfg.KafkaTopic)
		defer producer.Close()
		publishers = append(publishers, producer)
	}

	svc := game.NewService(cfg.Settings, player1, player2, view, publishers...)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(ctx)
		done <- err
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		// A human prompt may be blocked on input that never arrives.
		select {
		case err = <-done:
		case <-time.After(interruptGrace):
			err = ctx.Err()
		}
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stdout, "\nGame interrupted.")
		return 130
	case errors.Is(err, io.EOF):
		fmt.Fprintln(stdout, "\nInput closed. Exiting.")
		return 1
	default:
		log.Printf("[GAME] Game aborted: %v", err)
		return 1
	}
}

// choosePlayer uses the configured type ("h" or "c") or asks at the console.
func choosePlayer(prompter *console.Prompter, number int, configured string, botDelay time.Duration) (game.Player, error) {
	kind, ok := console.ParsePlayerKind(configured)
	if !ok {
		var err error
		if kind, err = prompter.PlayerKind(number); err != nil {
			return nil, err
		}
	}

	if kind == domain.Automated {
		return game.NewBotPlayer(botDelay), nil
	}
	return console.NewHumanPlayer(prompter), nil
}

func startWatchServer(cfg *config.Config, sm *game.SessionManager, connManager *websocket.ConnectionManager) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	wsHandler := websocket.NewHandler(connManager, sm)
	router := transportHttp.NewRouter(sm, wsHandler, cfg.WatchAllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.WatchPort,
		Handler: router,
	}

	go func() {
		log.Printf("[WATCH] Spectator server starting on :%s", cfg.WatchPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[WATCH] Server error: %v", err)
		}
	}()
	return srv
}

func shutdownWatchServer(srv *http.Server, connManager *websocket.ConnectionManager) {
	log.Println("[WATCH] Spectator server is shutting down...")
	connManager.CloseAll()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[WATCH] Server forced to shutdown: %v", err)
	}
}
