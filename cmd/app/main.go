package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"rental/cmd"
	httpin "rental/internal/adapters/in/http"
	"rental/internal/adapters/out/email"
	"rental/internal/adapters/out/kafkabus"
	"rental/internal/adapters/out/notify"
	"rental/internal/adapters/out/postgres"
	"rental/internal/adapters/out/postgres/userrepo"
	"rental/internal/adapters/out/rediscache"
	"rental/internal/core/ports"
	"rental/internal/jobs"
	"rental/internal/seed"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const (
	defaultCacheTTL     = 5 * time.Minute
	defaultRateLimitRPS = 20
	notifyBuffer        = 256
	shutdownTimeout     = 10 * time.Second
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load(".env")

	configs := getConfigs()
	logger := newLogger(configs.LogLevel, configs.LogFormat)
	slog.SetDefault(logger)

	if configs.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Connect(configs.DSN(), logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}

	cache, closeCache := newViewCache(ctx, configs, logger)
	defer closeCache()

	notifier, closeNotifier := newNotifier(configs, gormDB, logger)
	defer closeNotifier()

	app := cmd.NewCompositionRoot(configs, gormDB, cache, notifier, logger)

	if configs.SeedFile != "" {
		if err = seed.Categories(ctx, configs.SeedFile, app.CreateSeedCategoriesCommandHandler(), logger); err != nil {
			log.Fatalf("%v", err)
		}
	}

	jobManager := jobs.NewJobManager(
		app.CreateSendOverdueRemindersCommandHandler(),
		configs.OverdueReminderSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("%v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:                  goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:                  goDotEnvVariable("DB_PORT", "5432"),
		DBUser:                  goDotEnvVariable("DB_USER", ""),
		DBPassword:              goDotEnvVariable("DB_PASSWORD", ""),
		DBName:                  goDotEnvVariable("DB_NAME", ""),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE", "disable"),
		RedisAddr:               goDotEnvVariable("REDIS_ADDR", ""),
		RedisPassword:           goDotEnvVariable("REDIS_PASSWORD", ""),
		CacheTTL:                durationVariable("CACHE_TTL", defaultCacheTTL),
		KafkaBrokers:            listVariable("KAFKA_BROKERS"),
		KafkaOrderChangedTopic:  goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC", "rental.order.changed"),
		SendGridAPIKey:          goDotEnvVariable("SENDGRID_API_KEY", ""),
		MailFrom:                goDotEnvVariable("MAIL_FROM", ""),
		MailFromName:            goDotEnvVariable("MAIL_FROM_NAME", "Rental Marketplace"),
		JWTSecret:               goDotEnvVariable("JWT_SECRET", ""),
		RateLimitRPS:            floatVariable("RATE_LIMIT_RPS", defaultRateLimitRPS),
		MasterAdminEmail:        goDotEnvVariable("MASTER_ADMIN_EMAIL", ""),
		SeedFile:                goDotEnvVariable("SEED_FILE", ""),
		OverdueReminderSchedule: goDotEnvVariable("OVERDUE_REMINDER_SCHEDULE", jobs.DefaultOverdueReminderSchedule),
		LogLevel:                goDotEnvVariable("LOG_LEVEL", "info"),
		LogFormat:               goDotEnvVariable("LOG_FORMAT", "json"),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return d
}

func floatVariable(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return f
}

func listVariable(key string) []string {
	var out []string
	for _, part := range strings.Split(goDotEnvVariable(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// newViewCache connects to redis when REDIS_ADDR is set. Without it views are not cached.
func newViewCache(ctx context.Context, configs cmd.Config, logger *slog.Logger) (ports.ViewCache, func()) {
	if configs.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, view cache disabled")
		return nil, func() {}
	}

	rdb, err := rediscache.Connect(ctx, configs.RedisAddr, configs.RedisPassword, 0)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return rediscache.NewViewCache(rdb), func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("Failed to close redis client", "error", err)
		}
	}
}

// newNotifier fans order events out to kafka and sendgrid, whichever is configured,
// through one background queue.
func newNotifier(configs cmd.Config, gormDB *gorm.DB, logger *slog.Logger) (ports.Notifier, func()) {
	var (
		targets notify.Fanout
		closers []func() error
	)

	if len(configs.KafkaBrokers) > 0 {
		publisher := kafkabus.NewPublisher(kafkabus.NewWriter(configs.KafkaBrokers, configs.KafkaOrderChangedTopic))
		targets = append(targets, publisher)
		closers = append(closers, publisher.Close)
	}
	if configs.SendGridAPIKey != "" {
		targets = append(targets, email.NewNotifier(
			email.NewSendGridClient(configs.SendGridAPIKey),
			userrepo.NewGormCustomerDirectory(gormDB),
			configs.MailFrom,
			configs.MailFromName,
		))
	}

	if len(targets) == 0 {
		logger.Info("No notification targets configured")
		return nil, func() {}
	}

	async := notify.NewAsync(targets, notifyBuffer, logger)
	return async, func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := async.Close(ctx); err != nil {
			logger.Warn("Pending notifications dropped", "error", err)
		}
		for _, closeFn := range closers {
			if err := closeFn(); err != nil {
				logger.Warn("Failed to close notification target", "error", err)
			}
		}
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e, err := httpin.NewRouter(app.CreateServer(), httpin.RouterConfig{
		JWTSecret:    []byte(configs.JWTSecret),
		RateLimitRPS: configs.RateLimitRPS,
	}, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	go func() {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
