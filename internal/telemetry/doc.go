// Package telemetry обеспечивает наблюдаемость forge.
//
// Включает:
//   - logging.go — structured logging через slog
//
// Лог идёт в stderr, чтобы stdout оставался чистым для данных CLI.
// Уровень и формат настраиваются переменными LOG_LEVEL и LOG_FORMAT.
package telemetry
