package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/akobirdev/surveybot/internal/admin"
	"github.com/akobirdev/surveybot/internal/bot"
	"github.com/akobirdev/surveybot/internal/messaging"
	"github.com/akobirdev/surveybot/internal/session"
	"github.com/akobirdev/surveybot/internal/store"
	"github.com/akobirdev/surveybot/internal/util"
)

// Default configuration constants
const (
	// DefaultStateDir is the default directory for SurveyBot state data
	DefaultStateDir = "/var/lib/surveybot"
	// DefaultDBFileName is the default SQLite database filename
	DefaultDBFileName = "surveybot.db"
)

func main() {
	initializeLogger()

	config := loadEnvironmentConfig()
	flags := parseCommandLineFlags(config)

	st, err := openStore(flags)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	registry := buildRegistry(flags)

	directory := admin.NewDirectory(st)
	if *flags.rootAdminID != 0 {
		if _, err := directory.Add(*flags.rootAdminID, 0); err != nil {
			slog.Error("Failed to seed root admin", "error", err, "id", *flags.rootAdminID)
			os.Exit(1)
		}
	}

	gateway, err := messaging.NewTelegramGateway(messaging.WithToken(*flags.botToken))
	if err != nil {
		slog.Error("Failed to initialize telegram gateway", "error", err)
		os.Exit(1)
	}

	controller := bot.NewController(gateway, st, registry, directory)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("Bootstrapping SurveyBot", "dsn_set", *flags.dbDSN != "", "redis_set", *flags.redisAddr != "")
	if err := controller.Start(ctx); err != nil {
		slog.Error("SurveyBot failed to start", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	slog.Info("Shutdown signal received")
	if err := controller.Stop(); err != nil {
		slog.Error("SurveyBot stop failed", "error", err)
	}
	slog.Info("SurveyBot exited successfully")
}

// Config holds environment configuration
type Config struct {
	BotToken    string
	DatabaseURL string
	StateDir    string
	RedisAddr   string
	RootAdminID int64
	Debug       bool
}

// Flags holds command line flag values
type Flags struct {
	botToken    *string
	stateDir    *string
	dbDSN       *string
	redisAddr   *string
	rootAdminID *int64
}

// initializeLogger sets up structured logging
func initializeLogger() {
	level := slog.LevelInfo
	if util.ParseBoolEnv("SURVEYBOT_DEBUG", false) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadEnvironmentConfig loads configuration from environment variables and .env file
func loadEnvironmentConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	} else {
		slog.Debug("successfully loaded .env file")
	}

	config := Config{
		BotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StateDir:    os.Getenv("SURVEYBOT_STATE_DIR"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RootAdminID: util.ParseInt64Env("ROOT_ADMIN_ID", 0),
	}

	if config.StateDir == "" {
		config.StateDir = DefaultStateDir
		slog.Debug("No SURVEYBOT_STATE_DIR set, using default", "default_state_dir", config.StateDir)
	}
	return config
}

// parseCommandLineFlags parses flags, with environment values as defaults
func parseCommandLineFlags(config Config) Flags {
	flags := Flags{
		botToken:    flag.String("token", config.BotToken, "Telegram bot API token"),
		stateDir:    flag.String("state-dir", config.StateDir, "Directory for state data"),
		dbDSN:       flag.String("db-dsn", config.DatabaseURL, "Database DSN (SQLite path or PostgreSQL URL)"),
		redisAddr:   flag.String("redis-addr", config.RedisAddr, "Redis address for shared session state (optional)"),
		rootAdminID: flag.Int64("root-admin", config.RootAdminID, "Telegram id seeded as the first admin"),
	}
	flag.Parse()

	if *flags.botToken == "" {
		slog.Error("Telegram bot token not set; provide TELEGRAM_BOT_TOKEN or -token")
		os.Exit(1)
	}
	return flags
}

// openStore selects the storage backend from the DSN. An empty DSN falls
// back to a SQLite file under the state directory.
func openStore(flags Flags) (store.Store, error) {
	dsn := *flags.dbDSN
	if dsn == "" {
		dsn = filepath.Join(*flags.stateDir, DefaultDBFileName)
		slog.Debug("No DSN set, using SQLite default", "dsn", dsn)
	}
	if store.DetectDSNType(dsn) == "postgres" {
		slog.Info("Using PostgreSQL store")
		return store.NewPostgresStore(store.WithDSN(dsn))
	}
	slog.Info("Using SQLite store", "path", dsn)
	return store.NewSQLiteStore(store.WithDSN(dsn))
}

// buildRegistry selects the session registry backend. Redis is optional;
// without it sessions stay process-local.
func buildRegistry(flags Flags) session.Registry {
	if *flags.redisAddr == "" {
		return session.NewMemoryRegistry()
	}
	client := redis.NewClient(&redis.Options{Addr: *flags.redisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, falling back to in-memory sessions", "error", err, "addr", *flags.redisAddr)
		return session.NewMemoryRegistry()
	}
	slog.Info("Using Redis session registry", "addr", *flags.redisAddr)
	return session.NewRedisRegistry(client)
}
