package ocasdk

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// InfoCache memoizes derived BundleInfo views keyed by bundle identity (the
// SAID digest string). Building a view sorts the attribute table, which is
// wasted work when the same bundle validates a stream of records.
//
// The cache is pure memoization: a hit returns the same immutable view a miss
// would have built, so validation outcomes are unaffected. It never keys by
// data payload.
type InfoCache struct {
	c *lru.Cache[string, *BundleInfo]
}

// NewInfoCache creates a cache holding up to size views. size must be > 0.
func NewInfoCache(size int) (*InfoCache, error) {
	c, err := lru.New[string, *BundleInfo](size)
	if err != nil {
		return nil, err
	}
	return &InfoCache{c: c}, nil
}

// Resolve returns the view cached under said, building it from attrs on a
// miss. Callers must pass the same attribute table for the same SAID; the
// SAID is the identity of the resolved bundle content.
func (ic *InfoCache) Resolve(said string, attrs map[string]Attribute) *BundleInfo {
	if info, ok := ic.c.Get(said); ok {
		return info
	}
	info := NewBundleInfo(attrs)
	ic.c.Add(said, info)
	return info
}

// Len reports the number of cached views.
func (ic *InfoCache) Len() int { return ic.c.Len() }

// Purge drops every cached view.
func (ic *InfoCache) Purge() { ic.c.Purge() }
