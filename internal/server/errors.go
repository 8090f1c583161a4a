// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means neither SERVER_HTTP_ADDRESS nor
	// SERVER_GRPC_ADDRESS produced a transport.
	errNoServersAreCreated = errors.New("no http or grpc transport configured")
	// errServerStopped is reported when a transport returns while the
	// process is still expected to serve.
	errServerStopped = errors.New("server stopped unexpectedly")
)
