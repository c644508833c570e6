package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const logFileName = "app.log"

// logWriter открывает файл path и возвращает writer в файл + stderr (и в файл, и в консоль).
// Пустой path или ошибка открытия файла — только stderr.
func logWriter(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// ParseLevel переводит строку уровня (debug, info, warn, error) в slog.Level. Неизвестное — Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает логгер с текстовым выводом в файл app.log и уровнем Info.
func New() *slog.Logger {
	return NewWithLevel("info")
}

// NewWithLevel возвращает логгер с заданным уровнем, пишет в app.log и stderr.
func NewWithLevel(level string) *slog.Logger {
	return NewWithWriter(logWriter(logFileName), level)
}

// NewWithFile — как NewWithLevel, но файл задаётся явно (SHOP_LOG_FILE). Пустой путь — только stderr.
func NewWithFile(path, level string) *slog.Logger {
	return NewWithWriter(logWriter(path), level)
}

// NewWithWriter возвращает текстовый логгер поверх произвольного writer.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
