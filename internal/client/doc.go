// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services and background workers (the
// insight notification stream) into a single process lifecycle that restarts
// after a session reset.
package client
