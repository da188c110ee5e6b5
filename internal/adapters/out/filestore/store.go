// Package filestore persists the order aggregate as a single JSON document on
// disk. Writes are atomic: the new document is written to a temporary file and
// renamed over the primary, with the previous primary kept as a backup for
// corruption recovery.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"orderboard/internal/core/domain/model/order"
)

const (
	dataFile   = "orders.json"
	backupFile = "orders.json.bak"
	tempFile   = "orders.json.tmp"
)

// Store reads and writes the order snapshot under a data directory.
// A read never observes a half-written document because the write path
// replaces the primary file atomically; concurrent readers may only see a
// stale snapshot.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a snapshot store rooted at dir, creating the directory if
// needed.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return &Store{
		dir:    dir,
		logger: logger.With("component", "filestore"),
	}, nil
}

// Read returns the persisted snapshot. A missing or corrupt primary falls
// back to the backup copy; only when both are absent does a fresh empty
// aggregate come back. If both exist but are unreadable the store degrades to
// an empty aggregate. Data loss on that path is possible and is logged, never
// raised to the caller.
func (s *Store) Read(ctx context.Context) (*order.Data, error) {
	data, err := s.load(filepath.Join(s.dir, dataFile))
	if err == nil {
		return data, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		data, bakErr := s.load(filepath.Join(s.dir, backupFile))
		if bakErr != nil {
			return order.NewData(), nil
		}
		s.logger.WarnContext(ctx, "Primary snapshot missing, recovered from backup", "orders", len(data.Orders))
		return data, nil
	}

	s.logger.ErrorContext(ctx, "Primary snapshot unreadable, trying backup", "error", err)

	data, bakErr := s.load(filepath.Join(s.dir, backupFile))
	if bakErr != nil {
		s.logger.ErrorContext(ctx, "Backup snapshot unreadable, degrading to empty aggregate", "error", bakErr)
		return order.NewData(), nil
	}

	s.logger.WarnContext(ctx, "Recovered snapshot from backup", "orders", len(data.Orders))
	return data, nil
}

// Write persists the full snapshot: temp write, primary copied to backup,
// temp renamed over the primary. The primary is never unlinked, so unguarded
// concurrent readers always find a fully written document and a crash
// mid-write loses at most the update in flight. LastUpdated is refreshed
// before persisting.
func (s *Store) Write(ctx context.Context, data *order.Data) error {
	data.LastUpdated = time.Now().UTC()

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	primary := filepath.Join(s.dir, dataFile)
	temp := filepath.Join(s.dir, tempFile)

	if err := os.WriteFile(temp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write temp snapshot: %w", err)
	}

	current, err := os.ReadFile(primary)
	switch {
	case err == nil:
		if err := os.WriteFile(filepath.Join(s.dir, backupFile), current, 0o644); err != nil {
			return fmt.Errorf("failed to rotate snapshot backup: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to rotate snapshot backup: %w", err)
	}

	if err := os.Rename(temp, primary); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	s.logger.DebugContext(ctx, "Snapshot persisted", "orders", len(data.Orders))
	return nil
}

func (s *Store) load(path string) (*order.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data order.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("corrupt snapshot %s: %w", filepath.Base(path), err)
	}

	if data.Orders == nil {
		data.Orders = []*order.Order{}
	}
	if data.NextOrderNumber < 1 {
		data.NextOrderNumber = 1
	}

	return &data, nil
}
