// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notification owns the single in-process insight notification.
//
// [Center] is the only holder of the current [models.InsightNotification].
// The stream reader publishes into it, the presentation layer dismisses it
// and subscribes to changes. All methods are safe for concurrent use.
package notification

import (
	"sync"

	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/models"
)

// Policy decides what Publish does while a notification is already visible.
type Policy int

const (
	// PolicyOverwrite replaces the current notification unconditionally.
	PolicyOverwrite Policy = iota
	// PolicySuppressWhileVisible drops new events while one is visible.
	PolicySuppressWhileVisible
)

func (p Policy) String() string {
	switch p {
	case PolicyOverwrite:
		return "overwrite"
	case PolicySuppressWhileVisible:
		return "suppress-while-visible"
	default:
		return "unknown"
	}
}

// Option configures a [Center].
type Option func(*Center)

// WithPolicy sets the publish policy. The default is [PolicyOverwrite].
func WithPolicy(p Policy) Option {
	return func(c *Center) { c.policy = p }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(c *Center) { c.logger = l }
}

// Center holds the current notification and fans changes out to subscribers.
type Center struct {
	mu      sync.Mutex
	current models.InsightNotification
	policy  Policy
	closed  bool
	seq     uint64

	nextID int
	subs   map[int]chan models.InsightNotification

	logger *logger.Logger
}

// NewCenter returns an empty Center.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		subs:   make(map[int]chan models.InsightNotification),
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Publish makes a visible notification for dimension current. It returns
// false if nothing changed: the dimension is empty, the center is closed or
// the policy suppressed the event.
func (c *Center) Publish(dimension string) bool {
	if dimension == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	if c.policy == PolicySuppressWhileVisible && c.current.Visible {
		c.logger.Debug().
			Str("func", "Center.Publish").
			Str("dimension", dimension).
			Str("visible_dimension", c.current.Dimension).
			Msg("notification suppressed while another is visible")
		return false
	}

	c.seq++
	c.current = models.NewInsightNotification(dimension, c.seq)
	c.logger.Info().
		Str("func", "Center.Publish").
		Str("dimension", dimension).
		Msg("insight notification published")
	c.broadcast()

	return true
}

// Dismiss hides the notification published as seq. Message and dimension
// are kept. It returns false if nothing was visible or if a newer
// notification has replaced seq.
func (c *Center) Dismiss(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.current.Visible {
		return false
	}
	if c.current.Seq != seq {
		c.logger.Debug().
			Str("func", "Center.Dismiss").
			Uint64("seq", seq).
			Uint64("current_seq", c.current.Seq).
			Msg("stale dismissal ignored")
		return false
	}

	c.current.Visible = false
	c.broadcast()

	return true
}

// Current returns a copy of the current notification.
func (c *Center) Current() models.InsightNotification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Subscribe returns a channel that receives the notification after every
// change, and a func that cancels the subscription. Only the latest value is
// buffered: a slow reader skips intermediate states but never misses the
// final one. The channel is closed on cancel or on [Center.Close].
func (c *Center) Subscribe() (<-chan models.InsightNotification, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan models.InsightNotification, 1)
	if c.closed {
		close(ch)
		return ch, func() {}
	}

	id := c.nextID
	c.nextID++
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

// Reset clears the notification back to the zero value, e.g. after the
// session was reset.
func (c *Center) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.current = models.InsightNotification{}
	c.broadcast()
}

// Close closes every subscription. Later mutations are ignored.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}

// broadcast must be called with c.mu held.
func (c *Center) broadcast() {
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- c.current
	}
}
