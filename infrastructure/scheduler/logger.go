package scheduler

import (
	"tagtube/infrastructure/logger"

	"github.com/robfig/cron/v3"
)

// Logger routes cron's own messages to logrus.
func Logger() cron.Logger {
	return cron.PrintfLogger(logger.GetLogger().WithField("component", "scheduler"))
}
