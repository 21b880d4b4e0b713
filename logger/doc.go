// Package logger provides structured logging for recordkit using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.WithComponent("conv")
//	log.Debug("parse stage activated", logger.Fields("format", "csv"))
package logger
