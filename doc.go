// Package localstore presents independent, named key-value stores on top of
// one shared, flat, string-keyed medium.
//
// # Overview
//
// localstore is a backend adapter in the style of browser local storage: the
// medium is a single synchronous string-to-string store with no enumeration
// and no transactions, possibly shared with unrelated code, yet each Store
// behaves like a private namespace with ordered keys. The adapter keeps three
// things in step on every operation: the persisted value, a persisted
// per-namespace key index, and (optionally) an in-memory mirror of both.
//
// # Persisted Layout
//
// For a namespace "storageOne" holding keys "value" and "otherValue":
//
//	"storageOne-value"        -> {"value":{"data":[40,42]}}
//	"storageOne-otherValue"   -> {"value":10}
//	"__storageOne-keys-array" -> ["value","otherValue"]
//
// Values are wrapped in a {"value":...} envelope so a stored null stays
// distinguishable from an absent key. The index records insertion order;
// re-setting an existing key keeps its position.
//
// # Quick Start
//
//	ctx := context.Background()
//	medium := localstore.NewMemory()
//
//	store := localstore.New(ctx, localstore.Setup{Name: "storageOne"},
//		localstore.WithMedium(medium))
//
//	store.Set(ctx, "value", map[string]interface{}{"data": []int{40, 42}})
//	v, ok, _ := store.Get(ctx, "value")
//	n, _ := store.Size(ctx)
//	k, _, _ := store.KeyAt(ctx, 0) // "value"
//
// # Caching
//
// Setup.UseCache enables an in-memory mirror of the namespace's index and
// values. Reads hit the mirror without touching the medium; every returned
// and every cached value is a deep copy made through the persistence codec,
// so callers cannot mutate cached state through shared references. The
// mirror is updated only after the corresponding medium write, and always
// equals the medium's content for the namespace between operations. Run at
// most one cached instance per namespace name at a time; the mirrors of
// sibling instances are not synchronized.
//
// # Backends
//
// Any type implementing Medium can back a Store. The package ships three:
// NewMemory (in-process map), NewSQLite (single-file database) and NewRedis
// (shared remote store). NewInstrumentedMedium decorates any of them with
// Prometheus metrics, and OpenMedium builds one from environment
// configuration.
//
// # Error Handling
//
// The package defines sentinel errors matched with errors.Is:
//
//	err := store.Set(ctx, "__storageOne-keys-array", 1)
//	if errors.Is(err, localstore.ErrReservedKey) {
//	    // rename the key
//	}
//
// Available errors: ErrUninitialized, ErrReservedKey, ErrBadData. Medium
// failures propagate unwrapped from the operation that hit them, except
// failures during New's index probe, which are held back and returned by the
// first operation on the store. No error is retried or swallowed.
//
// # Concurrency
//
// The adapter's contract is single-threaded and synchronous: each operation
// runs to completion before the next begins, and multi-step sequences are
// not crash-atomic (the index write and the entry write are separate medium
// writes). The bundled media are individually thread-safe, but a Store with
// caching enabled must not be shared across goroutines without external
// ordering.
package localstore
