package log

import (
	"io"
	"os"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init points the logger at stdout and, when logFile is set, at that file too.
// An unknown level falls back to info.
func Init(level, logFile string) error {
	writers := []io.Writer{os.Stdout}
	var openErr error
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			openErr = err
		} else {
			writers = append(writers, f)
		}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	mu.Lock()
	logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().Level(lvl)
	mu.Unlock()
	return openErr
}

// SetOutput swaps the sink and keeps every level enabled. Tests use it to capture lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	logger = zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	mu.Unlock()
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func write(ev *zerolog.Event, c *fiber.Ctx, action string, err error, fields map[string]any) {
	if ev == nil {
		return
	}
	ev.Str("action", action)
	if c != nil {
		ev.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ev.Str("req_id", rid)
		}
	}
	if err != nil {
		ev.AnErr("err", err)
	}
	if len(fields) > 0 {
		ev.Interface("fields", fields)
	}
	ev.Send()
}

func Debug(c *fiber.Ctx, action string, fields map[string]any) {
	l := current()
	write(l.Debug(), c, action, nil, fields)
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	l := current()
	write(l.Info(), c, action, nil, fields)
}

// Audit records a state change (create/update/delete).
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	l := current()
	write(l.Log().Str("level", "audit"), c, action, nil, fields)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	l := current()
	write(l.Warn(), c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	l := current()
	write(l.Error(), c, action, err, fields)
}
