// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// MainLoop blocks until the user leaves. reset reports that the session
	// was reset and a fresh loop should start.
	MainLoop(ctx context.Context) (reset bool, err error)
}

// Notifications is the lifecycle of the notification holder.
type Notifications interface {
	Close()
}
