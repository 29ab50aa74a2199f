// Package telemetry боковой канал отчётов об ошибках (Sentry).
// Любой сбой здесь не должен влиять на ответ клиенту.
package telemetry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Init настраивает Sentry. Пустой DSN выключает отправку,
// локально так и запускаемся.
func Init(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	return nil
}

// CaptureError отправляет ошибку с контекстом операции.
func CaptureError(err error, operation string, extra map[string]any) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("operation", operation)
		for k, v := range extra {
			scope.SetExtra(k, v)
		}
		sentry.CaptureException(err)
	})
}

// CaptureMessage отправляет предупреждение без ошибки.
func CaptureMessage(message string) {
	sentry.CaptureMessage(message)
}

// Flush дожидается отправки накопленных событий при остановке.
func Flush() {
	sentry.Flush(2 * time.Second)
}
