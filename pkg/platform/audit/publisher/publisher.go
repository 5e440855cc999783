// Package publisher delivers audit events to a sink, optionally through an
// async buffer so domain operations never block on the audit path.
package publisher

import (
	"context"
	"log/slog"
	"sync"

	audit "larder/pkg/platform/audit"
	"larder/pkg/requestcontext"
)

// Publisher forwards events to a sink. In sync mode Emit appends directly;
// with an async buffer Emit enqueues and a worker drains. A full buffer drops
// the event rather than stalling the request path.
type Publisher struct {
	sink   audit.Sink
	logger *slog.Logger

	ch chan audit.Event
	wg sync.WaitGroup

	// mu orders Emit against Close so no send can hit a closed channel.
	mu     sync.Mutex
	closed bool
}

type Option func(*Publisher)

// WithAsyncBuffer enables async delivery with the given buffer size.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.ch = make(chan audit.Event, size)
	}
}

// WithLogger attaches a logger for drop/delivery-failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(sink audit.Sink, opts ...Option) *Publisher {
	p := &Publisher{sink: sink}
	for _, opt := range opts {
		opt(p)
	}
	if p.ch != nil {
		p.wg.Add(1)
		go p.drain()
	}
	return p
}

// Emit enriches the event with request metadata from ctx and delivers it.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	if event.Platform == "" {
		event.Platform = requestcontext.Platform(ctx)
	}

	if p.ch == nil {
		return p.sink.Append(ctx, event)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		if p.logger != nil {
			p.logger.Warn("audit publisher closed, dropping event", "action", event.Action)
		}
		return nil
	}

	select {
	case p.ch <- event:
	default:
		if p.logger != nil {
			p.logger.Warn("audit buffer full, dropping event", "action", event.Action)
		}
	}
	return nil
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.ch {
		if err := p.sink.Append(context.Background(), event); err != nil && p.logger != nil {
			p.logger.Error("audit delivery failed", "action", event.Action, "error", err)
		}
	}
}

// Close drains any buffered events and stops the worker. Safe to call more
// than once; Emit calls arriving after Close drop their event.
func (p *Publisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	if p.ch != nil {
		close(p.ch)
		p.wg.Wait()
	}
}
