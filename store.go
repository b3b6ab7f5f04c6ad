package localstore

import (
	"context"
	"fmt"
)

// DefaultName is the namespace used when Setup.Name is empty.
const DefaultName = "default"

// Setup configures one Store instance.
type Setup struct {
	// Name identifies the namespace. Distinct names map to disjoint
	// physical-key spaces; names are compared byte-wise with no
	// normalization, so avoiding case or Unicode near-collisions is the
	// caller's responsibility.
	Name string

	// UseCache enables the in-memory mirror of the namespace's index and
	// values. At most one cached instance should run per namespace name at
	// a time; sibling cached instances will see each other's writes late.
	UseCache bool
}

// Option customizes Store behavior.
type Option func(*client)

// WithMedium specifies the backing medium.
// If not provided, NewMemory() will be used.
func WithMedium(m Medium) Option {
	return func(c *client) {
		if m != nil {
			c.medium = m
		}
	}
}

// WithLogger specifies a logger for operation logging.
// If not provided, a no-op logger is used (no logging).
func WithLogger(logger Logger) Option {
	return func(c *client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLogTag sets a tag prefix for all log messages.
// Useful for identifying the source of logs when several stores share a medium.
func WithLogTag(tag string) Option {
	return func(c *client) {
		c.logTag = tag
	}
}

// Store exposes one namespace of a shared medium. Values are stored under
// "<name>-<key>" in a {"value":...} envelope and tracked by a per-namespace
// key index, so namespaces never observe each other's keys.
type Store interface {
	// Name returns the namespace name.
	Name() string

	// Get returns the value stored under key. The second return value
	// reports presence; a stored nil is present.
	Get(ctx context.Context, key string) (interface{}, bool, error)

	// Set stores a value under key, adding the key to the index if new.
	// A key equal to the namespace's own index key reports ErrReservedKey.
	Set(ctx context.Context, key string, value interface{}) error

	// Remove deletes a key and its index entry. Removing an unknown key is
	// a no-op.
	Remove(ctx context.Context, key string) error

	// Clear deletes every entry in the namespace and resets the index.
	// Other namespaces on the same medium are untouched.
	Clear(ctx context.Context) error

	// Size returns the number of keys in the namespace.
	Size(ctx context.Context) (int, error)

	// KeyAt returns the i-th key in insertion order, or false if i is out
	// of range.
	KeyAt(ctx context.Context, i int) (string, bool, error)
}

type client struct {
	name    string
	medium  Medium
	idx     *keyIndex
	caching bool
	values  map[string]interface{}
	initErr error
	logger  Logger
	logTag  string
}

// New creates a Store bound to one namespace of the medium.
// If no medium is provided via WithMedium, NewMemory() is used.
// If no logger is provided via WithLogger, a no-op logger is used (no logging).
//
// New never fails: the namespace's index record is probed (and created on
// first use) here, and a medium failure during that probe is held back and
// returned by the first operation on the store.
func New(ctx context.Context, setup Setup, opts ...Option) Store {
	name := setup.Name
	if name == "" {
		name = DefaultName
	}
	c := &client{
		name:    name,
		medium:  NewMemory(), // Default to in-memory
		caching: setup.UseCache,
		logger:  defaultLogger, // Default to no-op
	}
	for _, opt := range opts {
		opt(c)
	}
	c.idx = newKeyIndex(c.medium, name, c.caching)
	if c.caching {
		c.values = make(map[string]interface{})
	}
	if err := c.idx.ensure(ctx); err != nil {
		c.initErr = err
	}
	return c
}

func (c *client) Name() string {
	return c.name
}

// pending surfaces a held-back initialization error exactly once.
func (c *client) pending() error {
	err := c.initErr
	c.initErr = nil
	return err
}

func (c *client) logf(level string, ctx context.Context, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.logTag != "" {
		msg = c.logTag + " " + msg
	}
	switch level {
	case "info":
		c.logger.Info(ctx, msg)
	case "warn":
		c.logger.Warn(ctx, msg)
	case "error":
		c.logger.Error(ctx, msg)
	case "debug":
		c.logger.Debug(ctx, msg)
	}
}

func (c *client) Get(ctx context.Context, key string) (interface{}, bool, error) {
	if err := c.pending(); err != nil {
		c.logf("error", ctx, "Get %s failed: %v", key, err)
		return nil, false, err
	}

	if c.caching {
		if v, ok := c.values[key]; ok {
			cp, err := cloneValue(v)
			if err != nil {
				return nil, false, err
			}
			return cp, true, nil
		}
	}

	text, ok, err := c.medium.GetItem(ctx, entryKey(c.name, key))
	if err != nil {
		c.logf("error", ctx, "Get %s failed: %v", key, err)
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	value, err := decodeValue(text)
	if err != nil {
		c.logf("error", ctx, "Get %s failed: %v", key, err)
		return nil, false, err
	}
	if c.caching {
		c.values[key] = value
		cp, err := cloneValue(value)
		if err != nil {
			return nil, false, err
		}
		return cp, true, nil
	}
	return value, true, nil
}

func (c *client) Set(ctx context.Context, key string, value interface{}) error {
	if err := c.pending(); err != nil {
		c.logf("error", ctx, "Set %s failed: %v", key, err)
		return err
	}

	// A value write to the index record would silently corrupt the
	// namespace's own bookkeeping.
	if key == c.idx.storageKey {
		return fmt.Errorf("%w: %q", ErrReservedKey, key)
	}

	text, err := encodeValue(value)
	if err != nil {
		return err
	}

	// Index entry goes first: a key may transiently precede its entry in
	// the medium, never the reverse.
	if err := c.idx.add(ctx, key); err != nil {
		c.logf("error", ctx, "Set %s failed: %v", key, err)
		return err
	}
	if err := c.medium.SetItem(ctx, entryKey(c.name, key), text); err != nil {
		c.logf("error", ctx, "Set %s failed: %v", key, err)
		return err
	}

	if c.caching {
		cp, err := cloneValue(value)
		if err != nil {
			return err
		}
		c.values[key] = cp
	}
	return nil
}

func (c *client) Remove(ctx context.Context, key string) error {
	if err := c.pending(); err != nil {
		c.logf("error", ctx, "Remove %s failed: %v", key, err)
		return err
	}

	if err := c.idx.remove(ctx, key); err != nil {
		c.logf("error", ctx, "Remove %s failed: %v", key, err)
		return err
	}
	if err := c.medium.RemoveItem(ctx, entryKey(c.name, key)); err != nil {
		c.logf("error", ctx, "Remove %s failed: %v", key, err)
		return err
	}

	if c.caching {
		delete(c.values, key)
	}
	return nil
}

func (c *client) Clear(ctx context.Context) error {
	if err := c.pending(); err != nil {
		c.logf("error", ctx, "Clear failed: %v", err)
		return err
	}

	keys, err := c.idx.load(ctx)
	if err != nil {
		c.logf("error", ctx, "Clear failed: %v", err)
		return err
	}
	for _, key := range keys {
		if err := c.medium.RemoveItem(ctx, entryKey(c.name, key)); err != nil {
			c.logf("error", ctx, "Clear failed: %v", err)
			return err
		}
	}
	if err := c.idx.clear(ctx); err != nil {
		c.logf("error", ctx, "Clear failed: %v", err)
		return err
	}

	if c.caching {
		c.values = make(map[string]interface{})
	}
	return nil
}

func (c *client) Size(ctx context.Context) (int, error) {
	if err := c.pending(); err != nil {
		c.logf("error", ctx, "Size failed: %v", err)
		return 0, err
	}
	return c.idx.size(ctx)
}

func (c *client) KeyAt(ctx context.Context, i int) (string, bool, error) {
	if err := c.pending(); err != nil {
		c.logf("error", ctx, "KeyAt %d failed: %v", i, err)
		return "", false, err
	}
	return c.idx.keyAt(ctx, i)
}
