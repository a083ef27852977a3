// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// InsightNotification is the transient "new insight" banner state.
//
// Exactly one value exists per process; a new stream event replaces it.
type InsightNotification struct {
	// Message is the banner text.
	Message string
	// Dimension is the category the backend reported in the event name.
	Dimension string
	// Visible reports whether the banner should be shown.
	Visible bool
	// Seq identifies the publish that produced this value. Dismissing with a
	// stale Seq leaves a newer notification untouched.
	Seq uint64
}

// NewInsightNotification builds the visible notification for dimension.
func NewInsightNotification(dimension string, seq uint64) InsightNotification {
	return InsightNotification{
		Message:   fmt.Sprintf("New insight for %s", dimension),
		Dimension: dimension,
		Visible:   true,
		Seq:       seq,
	}
}
