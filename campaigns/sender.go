package campaigns

import (
	"context"
	"sync"
)

// Sender delivers one rendered campaign message to one phone number.
// Real SMS/WhatsApp transports plug in behind this interface.
type Sender interface {
	Send(ctx context.Context, phone, body string) error
}

// NoopSender accepts every message without delivering anywhere. It is
// the default until a transport is configured.
type NoopSender struct {
	mu   sync.Mutex
	sent int
}

// NewNoopSender creates a sender that only counts messages.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send records the message and returns immediately.
func (s *NoopSender) Send(ctx context.Context, phone, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.sent++
	s.mu.Unlock()
	return nil
}

// Sent returns how many messages were accepted.
func (s *NoopSender) Sent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent
}
