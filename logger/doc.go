// Package logger is the public API of routelog. Most users only need
// to import this package.
//
// A process calls Setup once with the console threshold, the file
// threshold, and the base directory for log files:
//
//	if err := logger.Setup(logger.InfoLevel, logger.DebugLevel, "/var/log/app"); err != nil {
//	    ...
//	}
//	defer logger.Close()
//
// After that, the package-level functions log through the shared sink:
//
//	logger.Info("orders", "order accepted")
//	logger.WithOrder(id).Error("orders", "payment declined")
//
// Records carrying an order identifier are routed to order_{id}.log;
// all others go to the current UTC day's log_{y}_{m}_{d}.log. A second
// Setup call reports ErrAlreadySetup and leaves the first
// configuration in place.
//
// The sink state is an explicit Logger value rather than hidden
// globals: New constructs an independent instance for callers that
// manage their own lifecycle (tests, multi-tenant binaries), and the
// package-level functions merely delegate to the one registered by
// Setup. Loggers returned by WithOrder and WithCategory share the
// parent's dispatcher and are cheap to create per request.
package logger
