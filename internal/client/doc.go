// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It wires the persisted session, the HTTP adapter, the client services, the
// startup workers and the terminal UI into a single process lifecycle.
package client
