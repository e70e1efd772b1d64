package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/pkg/errors"
)

// MaxDimension keeps column labels and the rendered board readable.
const MaxDimension = 99

type Config struct {
	Settings domain.Settings

	EmptySymbol   string
	Player1Symbol string
	Player2Symbol string

	// "h", "c" or empty to ask at startup
	Player1Type string
	Player2Type string
	BotDelay    time.Duration

	WatchPort           string
	WatchAllowedOrigins []string

	RedisURL      string
	RedisPassword string
	RedisChannel  string

	KafkaBrokers string
	KafkaTopic   string

	LogQuiet bool
}

var AppConfig *Config

func LoadConfig() *Config {
	settings := domain.DefaultSettings()
	settings.Rows = GetEnvAsInt("ROWS", domain.DefaultRows)
	settings.Columns = GetEnvAsInt("COLUMNS", domain.DefaultColumns)

	// Spectator server & CORS
	var allowedOrigins []string
	for _, origin := range strings.Split(GetEnv("WATCH_ALLOWED_ORIGINS", ""), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	AppConfig = &Config{
		Settings:            settings,
		EmptySymbol:         GetEnv("TOKEN_EMPTY", "."),
		Player1Symbol:       GetEnv("TOKEN_P1", "X"),
		Player2Symbol:       GetEnv("TOKEN_P2", "O"),
		Player1Type:         strings.ToLower(strings.TrimSpace(GetEnv("PLAYER1_TYPE", ""))),
		Player2Type:         strings.ToLower(strings.TrimSpace(GetEnv("PLAYER2_TYPE", ""))),
		BotDelay:            time.Duration(GetEnvAsInt("BOT_DELAY_MS", 0)) * time.Millisecond,
		WatchPort:           GetEnv("WATCH_PORT", ""),
		WatchAllowedOrigins: allowedOrigins,
		RedisURL:            GetEnv("REDIS_URL", ""),
		RedisPassword:       GetEnv("REDIS_PASSWORD", ""),
		RedisChannel:        GetEnv("REDIS_CHANNEL", "connect4:events"),
		KafkaBrokers:        GetEnv("KAFKA_BROKERS", ""),
		KafkaTopic:          GetEnv("KAFKA_TOPIC", "connect4.events"),
		LogQuiet:            GetEnvAsBool("LOG_QUIET", false),
	}

	return AppConfig
}

// Validate reports the first setting the game cannot start with.
func (c *Config) Validate() error {
	if c.Settings.Rows < 1 || c.Settings.Rows > MaxDimension {
		return errors.Errorf("ROWS must be between 1 and %d, got %d", MaxDimension, c.Settings.Rows)
	}
	if c.Settings.Columns < 1 || c.Settings.Columns > MaxDimension {
		return errors.Errorf("COLUMNS must be between 1 and %d, got %d", MaxDimension, c.Settings.Columns)
	}

	symbols := map[string]string{
		"TOKEN_EMPTY": c.EmptySymbol,
		"TOKEN_P1":    c.Player1Symbol,
		"TOKEN_P2":    c.Player2Symbol,
	}
	for key, symbol := range symbols {
		if utf8.RuneCountInString(symbol) != 1 {
			return errors.Errorf("%s must be a single character, got %q", key, symbol)
		}
	}
	if c.EmptySymbol == c.Player1Symbol || c.EmptySymbol == c.Player2Symbol || c.Player1Symbol == c.Player2Symbol {
		return errors.Errorf("token symbols must differ, got %q %q %q", c.EmptySymbol, c.Player1Symbol, c.Player2Symbol)
	}

	for key, value := range map[string]string{"PLAYER1_TYPE": c.Player1Type, "PLAYER2_TYPE": c.Player2Type} {
		if value != "" && value != "h" && value != "c" {
			return errors.Errorf("%s must be h or c, got %q", key, value)
		}
	}
	if c.BotDelay < 0 {
		return errors.Errorf("BOT_DELAY_MS must not be negative")
	}
	return nil
}

// Symbols returns the empty, player 1 and player 2 cell characters.
func (c *Config) Symbols() (empty, player1, player2 rune) {
	empty, _ = utf8.DecodeRuneInString(c.EmptySymbol)
	player1, _ = utf8.DecodeRuneInString(c.Player1Symbol)
	player2, _ = utf8.DecodeRuneInString(c.Player2Symbol)
	return empty, player1, player2
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
