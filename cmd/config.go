package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	KafkaBrokers           []string
	KafkaOrderChangedTopic string

	SendGridAPIKey string
	MailFrom       string
	MailFromName   string

	JWTSecret        string
	RateLimitRPS     float64
	MasterAdminEmail string

	SeedFile                string
	OverdueReminderSchedule string

	LogLevel  string
	LogFormat string
}

// DSN is the lib/pq connection string of the primary database.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}
