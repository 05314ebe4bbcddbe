package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const (
	keyLastSyncTime = "last_sync_time"
	keyDeviceID     = "device_id"
)

// SaveLastSyncTime saves the wall-clock time of the last successful pass
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(t.UnixMilli()))

		if err := bucket.Put([]byte(keyLastSyncTime), buf); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSyncTime retrieves the time of the last successful pass
// Returns the zero time if no pass has completed yet
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	var last time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyLastSyncTime))
		if buf == nil {
			// First sync hasn't happened yet
			return nil
		}

		last = time.UnixMilli(int64(binary.BigEndian.Uint64(buf))).UTC()
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return last, nil
}

// GetOrCreateDeviceID returns the stable device identifier, generating and
// persisting a new UUID on first call
func (s *Storage) GetOrCreateDeviceID(ctx context.Context) (string, error) {
	var deviceID string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if existing := bucket.Get([]byte(keyDeviceID)); existing != nil {
			deviceID = string(existing)
			return nil
		}

		deviceID = uuid.NewString()
		if err := bucket.Put([]byte(keyDeviceID), []byte(deviceID)); err != nil {
			return fmt.Errorf("failed to save device id: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get device id: %w", err)
	}

	return deviceID, nil
}
