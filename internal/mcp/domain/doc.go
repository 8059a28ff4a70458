// Package domain implements the MCP tool handlers for the Street View
// server: tool schemas, typed inputs and results, cross-field validation,
// and the glue between the capture API client and the on-disk stores.
package domain
