package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RegisterReplacesSameID(t *testing.T) {
	s := New(cron.DiscardLogger)

	s.Register("sweep", time.Minute, func() {})
	s.Register("other", time.Minute, func() {})
	s.Register("sweep", 30*time.Second, func() {})

	assert.Equal(t, 2, s.Len())
}

func TestScheduler_RunFiresAndStops(t *testing.T) {
	s := New(Logger())

	var calls int32
	s.Register("tick", time.Second, func() { atomic.AddInt32(&calls, 1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 1 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_RecoversPanics(t *testing.T) {
	s := New(cron.DiscardLogger)

	var calls int32
	s.Register("boom", time.Second, func() {
		atomic.AddInt32(&calls, 1)
		panic("sweep exploded")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Run(ctx) }()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 2 }, 4*time.Second, 50*time.Millisecond)
}
