// Package logger provides a structured logging solution using the Zap logging library.
// It includes utilities for creating and managing loggers, setting log levels,
// and integrating logging with context for enhanced traceability.
// The package supports key-value logging and customizable log levels.
//
// Nothing in this application may log credentials, tokens, verification codes
// or session cookies through this package at any level.
package logger
