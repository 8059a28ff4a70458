// Package service wires the Street View MCP tools into a server and runs it
// over stdio or HTTP.
package service
