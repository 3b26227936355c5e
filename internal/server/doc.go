// Package server runs the blob server's HTTP transport, including startup,
// signal handling and graceful shutdown.
package server
