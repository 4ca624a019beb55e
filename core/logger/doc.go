// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) with console or JSON encoding.
//
// # Run Scoping
//
// Every provisioning run is tagged with a run_id (a UUID). WithRunID attaches
// it to a logger so that all lines emitted during one run can be correlated,
// which matters when the provisioner is rerun from CI or cron.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, logger.NewRunID())
//	log.Info("Provisioning started")
package logger
