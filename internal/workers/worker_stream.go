// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/service"
)

// StreamWorker keeps the insight notification stream open while the client
// runs.
type StreamWorker struct {
	stream service.InsightStream
	logger *logger.Logger
}

func NewStreamWorker(stream service.InsightStream, logger *logger.Logger) *StreamWorker {
	return &StreamWorker{stream: stream, logger: logger}
}

func (w *StreamWorker) Start(ctx context.Context) {
	w.logger.Debug().Str("func", "StreamWorker.Start").Msg("connecting insight stream")
	w.stream.Connect(ctx)
}

func (w *StreamWorker) Stop() {
	w.stream.Disconnect()
	w.logger.Debug().
		Str("func", "StreamWorker.Stop").
		Stringer("state", w.stream.State()).
		Msg("insight stream stopped")
}
