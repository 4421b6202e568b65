// Package server implements the MCP (Model Context Protocol) server for UX audits.
//
// This package provides a JSON-RPC 2.0 server that exposes the audit pipeline and a
// few supporting image helpers through the MCP protocol, so MCP-compatible clients
// can audit screenshots stored on the local filesystem.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - ux_audit: Run the full audit on an image file and return the report
//   - image_dimensions: Get width, height and format
//   - image_sample_color: Get the color at a pixel
//   - contrast_ratio: Compute the contrast ratio between two hex colors
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Logs go to the configured logger, never to stdout, since stdout carries the
// protocol.
package server
