package state

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

var errMalformed = errors.New("malformed value")

// readJSON decodes key into dst. It reports false without error when the key
// is missing or holds malformed JSON.
func (s *Store) readJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.blobs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if isNull([]byte(raw)) {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("ignore malformed value", zap.String("key", key), zap.Error(err))
		return false, nil
	}

	return true, nil
}

// screenRecords returns the raw per-screen records. A malformed value yields
// errMalformed so that writers refuse to overwrite it.
func (s *Store) screenRecords(ctx context.Context) (map[string]json.RawMessage, error) {
	raw, err := s.blobs.Get(ctx, KeyScreenStates)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", KeyScreenStates, err)
	}
	if isNull([]byte(raw)) {
		return nil, nil
	}

	var records map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warn("malformed screen states", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", KeyScreenStates, errMalformed)
	}

	return records, nil
}

func (s *Store) appendTo(ctx context.Context, key string, item any) error {
	raw, err := s.blobs.Get(ctx, key)
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return fmt.Errorf("read %s: %w", key, err)
	}

	var list []json.RawMessage
	if err == nil && !isNull([]byte(raw)) {
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return fmt.Errorf("%s: %w", key, errMalformed)
		}
	}

	encoded, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s item: %w", key, err)
	}
	list = append(list, encoded)

	return s.writeJSON(ctx, key, list)
}

func (s *Store) writeJSON(ctx context.Context, key string, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.blobs.Put(ctx, key, string(encoded)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	return nil
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
