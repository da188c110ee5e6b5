package commands_test

import (
	"context"
	"testing"
	"time"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCleanupOrdersCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCleanupOrdersCommand(7)
		require.NoError(t, err)
		assert.Equal(t, 7, cmd.DaysOld())
	})

	t.Run("days below range", func(t *testing.T) {
		_, err := commands.NewCleanupOrdersCommand(0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("days above range", func(t *testing.T) {
		_, err := commands.NewCleanupOrdersCommand(366)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCleanupOrdersCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	store := newMemStore()

	old := seedOrder(store, "cs_old_delivered", now.AddDate(0, 0, -10))
	old.Status = order.Delivered
	recent := seedOrder(store, "cs_recent_delivered", now.AddDate(0, 0, -1))
	recent.Status = order.Delivered
	seedOrder(store, "cs_old_active", now.AddDate(0, 0, -10))

	h := commands.NewCleanupOrdersCommandHandler(newGate(), store)
	cmd, err := commands.NewCleanupOrdersCommand(7)
	require.NoError(t, err)

	removed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	require.Len(t, store.data.Orders, 2)
	assert.Nil(t, store.data.Find("cs_old_delivered"))
	assert.NotNil(t, store.data.Find("cs_recent_delivered"))
	assert.NotNil(t, store.data.Find("cs_old_active"))
	assert.Equal(t, 1, store.writeCount())
}

func TestCleanupOrdersCommandHandler_Handle_NothingToRemove(t *testing.T) {
	store := newMemStore()
	seedOrder(store, "cs_test_123", time.Now().UTC())

	h := commands.NewCleanupOrdersCommandHandler(newGate(), store)
	cmd, err := commands.NewCleanupOrdersCommand(7)
	require.NoError(t, err)

	removed, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, 0, removed)
	assert.Equal(t, 0, store.writeCount())
}

func TestCleanupOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCleanupOrdersCommandHandler(newGate(), newMemStore())

	_, err := h.Handle(context.Background(), commands.CleanupOrdersCommand{})
	require.Error(t, err)
}
