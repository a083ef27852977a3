package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/MKhiriev/flourish-client/internal/adapter"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/sse"
	"github.com/MKhiriev/flourish-client/internal/utils"
	"github.com/MKhiriev/flourish-client/models"
	"github.com/rs/zerolog"
)

const streamReadSize = 4 << 10

type insightStream struct {
	adapter   adapter.ServerAdapter
	publisher NotificationPublisher
	ids       *utils.UUIDGenerator

	// opMu serializes Connect and Disconnect.
	opMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	connID uint64
	state  models.StreamState
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewInsightStream creates an idle stream that publishes every named event
// to publisher.
func NewInsightStream(serverAdapter adapter.ServerAdapter, publisher NotificationPublisher, logger *logger.Logger) InsightStream {
	return &insightStream{
		adapter:   serverAdapter,
		publisher: publisher,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Connect implements InsightStream.
func (s *insightStream) Connect(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.stop()

	s.mu.Lock()
	s.connID++
	id := s.connID
	connCtx, cancel := context.WithCancel(utils.WithRequestID(ctx, s.ids.Generate()))
	s.cancel = cancel
	s.state = models.StreamConnecting
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(connCtx, cancel, id)
}

// Disconnect implements InsightStream.
func (s *insightStream) Disconnect() {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.stop()
}

// State implements InsightStream.
func (s *insightStream) State() models.StreamState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// stop cancels the active connection and waits for its reader. Callers hold
// opMu.
func (s *insightStream) stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *insightStream) run(ctx context.Context, cancel context.CancelFunc, id uint64) {
	defer s.wg.Done()
	defer cancel()

	requestID, _ := utils.GetRequestIDFromContext(ctx)
	log := s.logger.With().
		Str("func", "insightStream.run").
		Str("request_id", requestID).
		Logger()

	body, err := s.adapter.OpenInsightStream(ctx)
	if err != nil {
		if ctx.Err() != nil {
			log.Debug().Msg("insight stream cancelled while connecting")
			s.finish(id, models.StreamAborted)
			return
		}
		log.Err(err).Msg("failed to open insight stream")
		s.finish(id, models.StreamErrored)
		return
	}

	// a cancelled context must unblock a pending Read
	stopClose := context.AfterFunc(ctx, func() { _ = body.Close() })
	defer func() {
		stopClose()
		_ = body.Close()
	}()

	s.transition(id, models.StreamStreaming)
	log.Info().Msg("insight stream connected")

	decoder := sse.NewDecoder()
	buf := make([]byte, streamReadSize)

	for {
		if ctx.Err() != nil {
			log.Debug().Msg("insight stream disconnected")
			s.finish(id, models.StreamAborted)
			return
		}

		n, readErr := body.Read(buf)
		if n > 0 {
			for _, record := range decoder.Feed(buf[:n]) {
				s.handleRecord(&log, record)
			}
		}

		if readErr == nil {
			continue
		}

		switch {
		case ctx.Err() != nil:
			log.Debug().Msg("insight stream disconnected")
			s.finish(id, models.StreamAborted)
		case errors.Is(readErr, io.EOF):
			log.Info().Str("pending", decoder.Pending()).Msg("insight stream closed by server")
			s.finish(id, models.StreamClosed)
		default:
			log.Err(readErr).Msg("insight stream read failed")
			s.finish(id, models.StreamErrored)
		}
		return
	}
}

func (s *insightStream) handleRecord(log *zerolog.Logger, record string) {
	event := sse.ParseRecord(record)

	if event.Data != "" {
		log.Debug().Str("event", event.Name).Str("data", event.Data).Msg("insight stream payload")
	}
	if !event.HasName() {
		return
	}

	s.publisher.Publish(event.Name)
}

// transition records state for connection id unless a newer one replaced it.
func (s *insightStream) transition(id uint64, state models.StreamState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connID == id {
		s.state = state
	}
}

// finish records a terminal state and drops the cancel handle if it still
// belongs to connection id.
func (s *insightStream) finish(id uint64, state models.StreamState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connID != id {
		return
	}
	s.state = state
	s.cancel = nil
}
