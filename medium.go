package localstore

import "context"

// Medium describes the flat, string-keyed store the adapter persists into.
// It is deliberately minimal: synchronous single-key get/set/remove plus a
// wipe-everything Clear, no enumeration, no transactions. One Medium is
// typically shared by many namespaces and by code outside this package, so
// implementations must not assume they own every key they see.
//
// GetItem reports presence through its second return value; an absent key is
// not an error. Each single-key write is assumed atomic.
type Medium interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error

	// Clear removes every key in the medium, including keys owned by other
	// namespaces or foreign code. The store never calls it; namespace-level
	// Store.Clear removes only indexed entries.
	Clear(ctx context.Context) error
}

// entryKey derives the physical key for a logical key within a namespace.
func entryKey(namespace, key string) string {
	return namespace + "-" + key
}

// indexKey derives the physical key holding a namespace's key index.
func indexKey(namespace string) string {
	return "__" + namespace + "-keys-array"
}
