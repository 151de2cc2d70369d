package wizard_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/logger"
	"github.com/dmitrymomot/userdash/pkg/wizard"
)

func TestSimulatedSubmitter(t *testing.T) {
	t.Parallel()

	t.Run("logs the record", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		s := wizard.NewSimulatedSubmitter(
			wizard.WithSubmitDelay(0),
			wizard.WithSubmitLogger(logger.New(logger.WithOutput(&buf))),
		)
		require.NoError(t, s.Submit(context.Background(), fullRecord))
		assert.Contains(t, buf.String(), "New User Data")
		assert.Contains(t, buf.String(), "Cupertino")
	})

	t.Run("waits for the delay", func(t *testing.T) {
		t.Parallel()
		s := wizard.NewSimulatedSubmitter(wizard.WithSubmitDelay(30 * time.Millisecond))
		start := time.Now()
		require.NoError(t, s.Submit(context.Background(), fullRecord))
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := wizard.NewSimulatedSubmitter()
		assert.ErrorIs(t, s.Submit(ctx, fullRecord), context.Canceled)
	})

	t.Run("failure hook", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		s := wizard.NewSimulatedSubmitter(
			wizard.WithSubmitDelay(0),
			wizard.WithFailure(func(wizard.Record) error { return boom }),
		)
		assert.ErrorIs(t, s.Submit(context.Background(), fullRecord), boom)
	})
}
