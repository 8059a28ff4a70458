// Package streetview implements a client for the Google Street View Static
// API image and metadata endpoints, along with the request validation and
// error classification shared by the MCP tool layer.
package streetview
