package notifications_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/logger"
	"github.com/dmitrymomot/userdash/pkg/notifications"
)

func TestBroadcastDeliverer(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := notifications.NewBroadcastDeliverer(4, notifications.WithBroadcastLogger(logger.Discard()))
	defer d.Close()

	mine := d.Subscribe(ctx, "p1")
	theirs := d.Subscribe(ctx, "p2")

	require.NoError(t, d.Deliver(ctx, notifications.Toast{ProfileID: "p1", Message: "hello"}))

	select {
	case msg := <-mine.Receive():
		assert.Equal(t, "hello", msg.Data.Message)
	case <-time.After(time.Second):
		t.Fatal("toast not delivered")
	}

	select {
	case msg := <-theirs.Receive():
		t.Fatalf("leaked toast to another profile: %v", msg.Data)
	default:
	}
}

func TestBroadcastDelivererEviction(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := notifications.NewBroadcastDeliverer(1, notifications.WithMaxProfiles(1))
	sub := d.Subscribe(ctx, "old")
	_ = d.Subscribe(ctx, "new")

	select {
	case _, open := <-sub.Receive():
		assert.False(t, open, "evicted profile subscription must be closed")
	case <-time.After(time.Second):
		t.Fatal("subscription not closed on eviction")
	}
}
