package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger = logrus.New()
	mu     sync.Mutex
)

// InitLogger configures the shared logger. Safe to call more than once.
func InitLogger(level logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(level)
}

// GetLogger returns the process-wide logger. It is usable before InitLogger is called.
func GetLogger() *logrus.Logger {
	return logger
}
