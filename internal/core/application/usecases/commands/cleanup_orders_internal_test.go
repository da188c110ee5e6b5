package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiredAt_CutoffBoundary(t *testing.T) {
	cutoff := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	assert.True(t, expiredAt(cutoff.Add(-time.Second), cutoff))
	assert.True(t, expiredAt(cutoff, cutoff), "an update exactly at the cutoff is removed")
	assert.False(t, expiredAt(cutoff.Add(time.Second), cutoff))
}
