// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sse implements the minimal subset of the Server-Sent Events wire
// format used by the insight notification stream.
//
// A [Decoder] accumulates raw bytes and splits them into records on the
// blank-line delimiter "\n\n". [ParseRecord] turns a single record into an
// [Event]: the "event:" line gives the event name, "data:" lines are joined
// into Data and lines starting with ":" are comments. Carriage returns,
// "id:" and "retry:" fields are not interpreted.
package sse
