package localstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// keyIndex owns the persisted ordered list of logical keys live in one
// namespace. Every structural change is written back to the medium
// immediately; when caching is enabled the list is also mirrored in memory
// and served from there on reads.
type keyIndex struct {
	medium     Medium
	storageKey string
	caching    bool

	mirror []string
	loaded bool
}

func newKeyIndex(medium Medium, namespace string, caching bool) *keyIndex {
	return &keyIndex{
		medium:     medium,
		storageKey: indexKey(namespace),
		caching:    caching,
	}
}

// ensure probes the index record, creating it empty on first use of the
// namespace and loading it into the mirror when caching is enabled.
func (ki *keyIndex) ensure(ctx context.Context) error {
	text, ok, err := ki.medium.GetItem(ctx, ki.storageKey)
	if err != nil {
		return err
	}
	if !ok {
		return ki.persist(ctx, nil)
	}
	if ki.caching {
		keys, err := parseIndex(text)
		if err != nil {
			return err
		}
		ki.mirror = keys
		ki.loaded = true
	}
	return nil
}

// load returns the current index, from the mirror when caching is enabled
// and warm, otherwise from the medium. An absent index record reports
// ErrUninitialized.
func (ki *keyIndex) load(ctx context.Context) ([]string, error) {
	if ki.caching && ki.loaded {
		return ki.mirror, nil
	}
	text, ok, err := ki.medium.GetItem(ctx, ki.storageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUninitialized
	}
	keys, err := parseIndex(text)
	if err != nil {
		return nil, err
	}
	if ki.caching {
		ki.mirror = keys
		ki.loaded = true
	}
	return keys, nil
}

// persist writes the full index to the medium and, on success, replaces the
// mirror. The mirror is never updated before the medium write succeeds.
func (ki *keyIndex) persist(ctx context.Context, keys []string) error {
	if keys == nil {
		keys = []string{}
	}
	b, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("localstore: encode key index: %w", err)
	}
	if err := ki.medium.SetItem(ctx, ki.storageKey, string(b)); err != nil {
		return err
	}
	if ki.caching {
		ki.mirror = keys
		ki.loaded = true
	}
	return nil
}

// add appends the key in insertion order and persists. Re-adding a key that
// is already listed is a no-op and does not touch the medium.
func (ki *keyIndex) add(ctx context.Context, key string) error {
	keys, err := ki.load(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if k == key {
			return nil
		}
	}
	next := make([]string, 0, len(keys)+1)
	next = append(next, keys...)
	next = append(next, key)
	return ki.persist(ctx, next)
}

// remove filters the key out and persists unconditionally, so removing a key
// that was never listed is idempotent.
func (ki *keyIndex) remove(ctx context.Context, key string) error {
	keys, err := ki.load(ctx)
	if err != nil {
		return err
	}
	next := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != key {
			next = append(next, k)
		}
	}
	return ki.persist(ctx, next)
}

// clear persists an empty index. Deleting the entries it listed is the
// caller's job; it must read the index before calling clear.
func (ki *keyIndex) clear(ctx context.Context) error {
	return ki.persist(ctx, nil)
}

func (ki *keyIndex) size(ctx context.Context) (int, error) {
	keys, err := ki.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// keyAt returns the i-th listed key. Out-of-range positions report absence,
// not an error; range validation is the caller's concern.
func (ki *keyIndex) keyAt(ctx context.Context, i int) (string, bool, error) {
	keys, err := ki.load(ctx)
	if err != nil {
		return "", false, err
	}
	if i < 0 || i >= len(keys) {
		return "", false, nil
	}
	return keys[i], true, nil
}

func parseIndex(text string) ([]string, error) {
	var keys []string
	if err := json.Unmarshal([]byte(text), &keys); err != nil {
		return nil, fmt.Errorf("%w: key index: %v", ErrBadData, err)
	}
	return keys, nil
}
