package lock_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"orderboard/internal/pkg/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Do_RunsFunction(t *testing.T) {
	g := lock.NewGate(time.Second)

	ran := false
	err := g.Do(context.Background(), func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestGate_Do_PropagatesError(t *testing.T) {
	g := lock.NewGate(time.Second)
	boom := errors.New("boom")

	err := g.Do(context.Background(), func() error { return boom })
	require.ErrorIs(t, err, boom)
}

func TestGate_Do_ReleasesAfterError(t *testing.T) {
	g := lock.NewGate(time.Second)

	_ = g.Do(context.Background(), func() error { return errors.New("boom") })

	err := g.Do(context.Background(), func() error { return nil })
	require.NoError(t, err)
}

func TestGate_Do_TimesOutWhenHeld(t *testing.T) {
	g := lock.NewGate(50 * time.Millisecond)

	hold := make(chan struct{})
	done := make(chan struct{})
	go func() {
		_ = g.Do(context.Background(), func() error {
			close(done)
			<-hold
			return nil
		})
	}()
	<-done

	err := g.Do(context.Background(), func() error { return nil })
	require.ErrorIs(t, err, lock.ErrTimeout)

	close(hold)
}

func TestGate_Do_ContextCancelledWhileWaiting(t *testing.T) {
	g := lock.NewGate(time.Second)

	hold := make(chan struct{})
	done := make(chan struct{})
	go func() {
		_ = g.Do(context.Background(), func() error {
			close(done)
			<-hold
			return nil
		})
	}()
	<-done

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Do(ctx, func() error { return nil })
	require.ErrorIs(t, err, context.Canceled)

	close(hold)
}

func TestGate_Do_SerializesCriticalSections(t *testing.T) {
	g := lock.NewGate(5 * time.Second)

	counter := 0
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Do(context.Background(), func() error {
				v := counter
				time.Sleep(time.Millisecond)
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, counter)
}
