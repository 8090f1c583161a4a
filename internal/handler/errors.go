// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server config
// names no listen address, so the blog API would not be reachable.
var errNoHandlersAreCreated = errors.New("no http or grpc address configured for the blog api")
