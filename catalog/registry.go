package catalog

import (
	"sort"
	"sync"
)

// SortTVLDesc is the only sort order the catalog listing understands.
const SortTVLDesc = "TVL_DESC"

// Registry maps pool ids to immutable pool snapshots. Lookups return pools by
// value so a reader can never observe a record mid-update; Replace swaps the
// whole set atomically.
type Registry struct {
	mu    sync.RWMutex
	pools map[string]Pool
	order []string
}

func NewRegistry() *Registry {
	return &Registry{pools: map[string]Pool{}}
}

// NewRegistryFromRecords builds a registry from wire records, rejecting
// malformed records and duplicate ids.
func NewRegistryFromRecords(records []PoolRecord) (*Registry, error) {
	pools, err := poolsFromRecords(records)
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	r.Replace(pools)
	return r, nil
}

// Lookup returns the pool with the given id, if present.
func (r *Registry) Lookup(poolID string) (Pool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pools[poolID]
	return p, ok
}

// Replace swaps in a new pool set, preserving the given order for listings.
func (r *Registry) Replace(pools []Pool) {
	next := make(map[string]Pool, len(pools))
	order := make([]string, 0, len(pools))
	for _, p := range pools {
		if _, exists := next[p.PoolID]; exists {
			continue
		}
		next[p.PoolID] = p
		order = append(order, p.PoolID)
	}

	r.mu.Lock()
	r.pools = next
	r.order = order
	r.mu.Unlock()
}

// Len returns the number of pools currently registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pools)
}

// ListOptions filters and shapes a catalog listing. A pool matches when either
// of its assets equals either provided address.
type ListOptions struct {
	AssetAAddress string
	AssetBAddress string
	Sort          string
	Limit         int
}

// List returns pools in registration order, filtered and shaped per opts.
func (r *Registry) List(opts ListOptions) []Pool {
	r.mu.RLock()
	out := make([]Pool, 0, len(r.order))
	for _, id := range r.order {
		p := r.pools[id]
		if matchesAssets(p, opts) {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	if opts.Sort == SortTVLDesc {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TvlAssetB.GT(out[j].TvlAssetB)
		})
	}

	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out
}

func matchesAssets(p Pool, opts ListOptions) bool {
	if opts.AssetAAddress == "" && opts.AssetBAddress == "" {
		return true
	}
	for _, addr := range []string{opts.AssetAAddress, opts.AssetBAddress} {
		if addr == "" {
			continue
		}
		if p.AssetA == addr || p.AssetB == addr {
			return true
		}
	}
	return false
}

func poolsFromRecords(records []PoolRecord) ([]Pool, error) {
	seen := map[string]struct{}{}
	pools := make([]Pool, 0, len(records))
	for _, rec := range records {
		p, err := rec.ToPool()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p.PoolID]; dup {
			return nil, ErrDuplicatePoolId.Wrap(p.PoolID)
		}
		seen[p.PoolID] = struct{}{}
		pools = append(pools, p)
	}
	return pools, nil
}
