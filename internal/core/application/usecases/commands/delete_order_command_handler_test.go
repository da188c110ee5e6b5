package commands_test

import (
	"context"
	"testing"
	"time"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewDeleteOrderCommand("ORD-001")
		require.NoError(t, err)
		assert.Equal(t, "ORD-001", cmd.Identifier())
	})

	t.Run("identifier is required", func(t *testing.T) {
		_, err := commands.NewDeleteOrderCommand("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	store := newMemStore()
	notifier := &recordingNotifier{}
	seedOrder(store, "cs_test_123", time.Now().UTC())
	seedOrder(store, "cs_test_456", time.Now().UTC())
	h := commands.NewDeleteOrderCommandHandler(newGate(), store, notifier)

	cmd, err := commands.NewDeleteOrderCommand("ORD-001")
	require.NoError(t, err)

	deleted, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "cs_test_123", deleted.ID)
	require.Len(t, store.data.Orders, 1)
	require.Len(t, notifier.deletedIDs, 1)
	assert.Equal(t, "cs_test_123", notifier.deletedIDs[0])
	assert.Equal(t, 1, store.writeCount())
}

func TestDeleteOrderCommandHandler_Handle_NumberingNotReused(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	seedOrder(store, "cs_test_123", time.Now().UTC())
	h := commands.NewDeleteOrderCommandHandler(newGate(), store, &recordingNotifier{})

	cmd, err := commands.NewDeleteOrderCommand("cs_test_123")
	require.NoError(t, err)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "ORD-002", store.data.NextNumber())
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	store := newMemStore()
	notifier := &recordingNotifier{}
	h := commands.NewDeleteOrderCommandHandler(newGate(), store, notifier)

	cmd, err := commands.NewDeleteOrderCommand("ORD-404")
	require.NoError(t, err)

	_, err = h.Handle(context.Background(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, notifier.deletedIDs)
	assert.Equal(t, 0, store.writeCount())
}
