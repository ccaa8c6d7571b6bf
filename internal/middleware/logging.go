// internal/middleware/logging.go

package middleware

import (
	"time"

	"github.com/sirupsen/logrus"
)

// CommandFunc runs one host command and returns the text to show.
type CommandFunc func(args []string) (string, error)

// LogCommand wraps a command so each invocation is logged with its name,
// argument count, duration and error.
func LogCommand(logger *logrus.Logger, name string) func(next CommandFunc) CommandFunc {
	return func(next CommandFunc) CommandFunc {
		return func(args []string) (string, error) {
			start := time.Now()

			out, err := next(args)

			fields := logrus.Fields{
				"command":  name,
				"args":     len(args),
				"duration": time.Since(start),
			}
			if err != nil {
				fields["error"] = err
				logger.WithFields(fields).Debug("Command rejected")
				return out, err
			}
			logger.WithFields(fields).Info("Command")
			return out, nil
		}
	}
}

// Chain applies middlewares so the first one listed runs outermost.
func Chain(next CommandFunc, mws ...func(CommandFunc) CommandFunc) CommandFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		next = mws[i](next)
	}
	return next
}
