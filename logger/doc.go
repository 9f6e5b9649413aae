// Package logger wraps zerolog with a small structured-logging surface
// shared by the httpexec packages. Callers that already run their own
// zerolog setup can wrap it with FromZerolog; everyone else gets a
// ready-to-use console or JSON logger from New or NewDefault.
package logger
