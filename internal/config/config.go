package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr           string
	DBDSN              string
	Environment        string
	MigrationsPath     string
	ClerkSecretKey     string
	ClerkJWTPublicKey  string // PEM, публичный ключ инстанса Clerk
	ClerkWebhookSecret string // whsec_... для проверки подписи вебхука
	SentryDSN          string
	RedisAddr          string
	TeacherEmailDomain string
	StudentEmailPrefix string
	DevEmailPrefix     string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		HTTPAddr:           os.Getenv("HTTP_ADDR"),
		DBDSN:              os.Getenv("DB_DSN"),
		Environment:        os.Getenv("ENV"),
		MigrationsPath:     os.Getenv("MIGRATIONS_PATH"),
		ClerkSecretKey:     os.Getenv("CLERK_SECRET_KEY"),
		ClerkJWTPublicKey:  os.Getenv("CLERK_JWT_PUBLIC_KEY"),
		ClerkWebhookSecret: os.Getenv("CLERK_WEBHOOK_SECRET"),
		SentryDSN:          os.Getenv("SENTRY_DSN"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		TeacherEmailDomain: os.Getenv("TEACHER_EMAIL_DOMAIN"),
		StudentEmailPrefix: os.Getenv("STUDENT_EMAIL_PREFIX"),
		DevEmailPrefix:     os.Getenv("DEV_EMAIL_PREFIX"),
	}

	// Дефолтные значения
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}
	if cfg.TeacherEmailDomain == "" {
		cfg.TeacherEmailDomain = "@ormiston.school.nz"
	}
	if cfg.StudentEmailPrefix == "" {
		cfg.StudentEmailPrefix = "st"
	}
	if cfg.DevEmailPrefix == "" {
		cfg.DevEmailPrefix = "st23030"
	}

	// Обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}
