package cache

import (
	"context"

	"travel_backend/internal/events"
)

// Invalidator drops cached pages whose content an event made stale.
type Invalidator struct {
	cache PageCache
}

func NewInvalidator(c PageCache) *Invalidator {
	return &Invalidator{cache: c}
}

// Register subscribes the invalidator to every content event.
func (inv *Invalidator) Register(bus *events.Bus) {
	bus.Subscribe(events.NamePackageRatingChanged, inv.handle)
	bus.Subscribe(events.NamePackageChanged, inv.handle)
	bus.Subscribe(events.NameDestinationChanged, inv.handle)
}

func (inv *Invalidator) handle(ctx context.Context, e events.Event) error {
	keys := KeysFor(e)
	if len(keys) == 0 {
		return nil
	}
	return inv.cache.Delete(ctx, keys...)
}

// KeysFor lists the cache keys affected by e.
func KeysFor(e events.Event) []string {
	var keys []string
	add := func(key func(string) string, slugs ...string) {
		for _, s := range slugs {
			if s != "" {
				keys = append(keys, key(s))
			}
		}
	}

	switch ev := e.(type) {
	case events.PackageRatingChanged:
		add(PackageKey, ev.Slug)
		add(DestinationKey, ev.DestinationSlug)
	case events.PackageChanged:
		add(PackageKey, ev.Slugs...)
		add(DestinationKey, ev.DestinationSlugs...)
	case events.DestinationChanged:
		add(DestinationKey, ev.Slugs...)
	}
	return dedupe(keys)
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := keys[:0]
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
