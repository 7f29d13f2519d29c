package campaigns

import (
	"context"
	"testing"
)

func TestNoopSenderCountsMessages(t *testing.T) {
	sender := NewNoopSender()

	for i := 0; i < 3; i++ {
		if err := sender.Send(context.Background(), "9876543210", "Hi Rajesh"); err != nil {
			t.Fatalf("Send returned error: %v", err)
		}
	}

	if sender.Sent() != 3 {
		t.Errorf("expected 3 sent messages, got %d", sender.Sent())
	}
}

func TestNoopSenderHonorsContext(t *testing.T) {
	sender := NewNoopSender()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sender.Send(ctx, "9876543210", "late message"); err == nil {
		t.Error("expected error for cancelled context")
	}
	if sender.Sent() != 0 {
		t.Errorf("cancelled send should not count, got %d", sender.Sent())
	}
}
