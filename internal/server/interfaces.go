// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests and blocks until a termination signal.
	RunServer()

	// Shutdown gracefully stops serving.
	Shutdown()
}
