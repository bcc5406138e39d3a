// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the item keeper.
//
// It wires the chi router, the middleware chain (request id, access logging,
// panic recovery, CORS, bearer authentication) and the user and item
// handlers. Every failure raised below this layer is rendered by a single
// error translator into a JSON envelope carrying the request id.
package http
