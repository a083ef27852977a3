// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sse

import "bytes"

// RecordDelimiter separates records on the wire.
const RecordDelimiter = "\n\n"

var delimiter = []byte(RecordDelimiter)

// Decoder splits an incoming byte stream into complete records.
//
// Records are only produced once their trailing delimiter has arrived, so a
// multi-byte UTF-8 sequence split across two chunks is reassembled before
// the record is converted to a string. A Decoder is not safe for concurrent
// use.
type Decoder struct {
	buf []byte
}

// NewDecoder returns an empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends chunk to the accumulation buffer and returns every complete
// record in arrival order. Bytes after the last delimiter stay buffered.
func (d *Decoder) Feed(chunk []byte) []string {
	d.buf = append(d.buf, chunk...)

	var records []string
	for {
		idx := bytes.Index(d.buf, delimiter)
		if idx < 0 {
			break
		}
		records = append(records, string(d.buf[:idx]))
		d.buf = d.buf[idx+len(delimiter):]
	}

	// release the consumed prefix once nothing is pending
	if len(d.buf) == 0 {
		d.buf = nil
	}

	return records
}

// Pending returns the bytes received after the last complete record.
func (d *Decoder) Pending() string {
	return string(d.buf)
}

// Reset drops any buffered bytes.
func (d *Decoder) Reset() {
	d.buf = nil
}
