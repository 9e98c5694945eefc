package prefs

import (
	"errors"
	"maps"
	"slices"
)

// ErrStorageUnavailable is returned by a Memory backend with failures enabled.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Memory is an in-process Backend. FailReads and FailWrites simulate a
// broken or full store.
type Memory struct {
	values     map[string]string
	FailReads  bool
	FailWrites bool
}

// NewMemory returns an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) GetSetting(key string) (string, bool, error) {
	if m.FailReads {
		return "", false, ErrStorageUnavailable
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) SaveSetting(key, value string) error {
	if m.FailWrites {
		return ErrStorageUnavailable
	}
	m.values[key] = value
	return nil
}

func (m *Memory) DeleteSetting(key string) error {
	return m.DeleteSettings(key)
}

func (m *Memory) DeleteSettings(keys ...string) error {
	if m.FailWrites {
		return ErrStorageUnavailable
	}
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

// Raw returns the stored string for key, bypassing decoding.
func (m *Memory) Raw(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string {
	return slices.Sorted(maps.Keys(m.values))
}
