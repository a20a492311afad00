package logger_test

import (
	"github.com/google/uuid"

	"github.com/philipp01105/routelog/logger"
)

// Typical process setup: INFO and above on the console, DEBUG and
// above in files under /var/log/vending.
func Example() {
	if err := logger.Setup(logger.InfoLevel, logger.DebugLevel, "/var/log/vending"); err != nil {
		return
	}
	defer logger.Close()

	logger.Info("system", "machine online")

	// Everything about one order lands in order_{id}.log.
	orderID := uuid.NewString()
	order := logger.WithOrder(orderID)
	order.Info("vending", "order started")
	order.Debug("payment", "card presented")
	order.Error("vending", "dispense failed")
}

// An isolated logger instance, for callers that manage their own
// lifecycle instead of using the package-level sink.
func Example_instance() {
	log, err := logger.New(logger.Config{
		ConsoleLevel: logger.ParseLevel("warn"),
		FileLevel:    logger.ParseLevel("trace"),
		BasePath:     "/tmp/logs",
	})
	if err != nil {
		return
	}
	defer log.Close()

	log.WithCategory("orders").Infof("accepted order %d", 42)
}
