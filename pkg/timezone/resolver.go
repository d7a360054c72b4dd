// Package timezone resolves named zone identifiers to offset rules with a
// process-wide cache. Resolution is fail-soft by default: an unrecognized
// identifier behaves like UTC instead of failing, so conversions never break
// on a bad zone string. TryResolve is the strict variant for callers that
// need to tell "explicitly UTC" apart from "fell back to UTC".
package timezone

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/calendar"
)

// OffsetFunc returns the signed offset from UTC that applies to the given
// local wall-clock value.
type OffsetFunc func(c calendar.Civil) time.Duration

// UnknownZoneError reports an identifier the provider could not resolve.
type UnknownZoneError struct {
	Identifier string
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("unknown timezone identifier %q", e.Identifier)
}

// Provider resolves a zone identifier to its offset rule.
type Provider interface {
	ResolveZone(identifier string) (OffsetFunc, error)
}

// Handle is a resolved timezone. Fallback is true when resolution failed and
// the handle degraded to UTC, so callers can surface the difference.
type Handle struct {
	Name     string
	Fallback bool
	offset   OffsetFunc
}

// OffsetAt returns the offset from UTC at the given local wall-clock value.
func (h Handle) OffsetAt(c calendar.Civil) time.Duration {
	if h.offset == nil {
		return 0
	}
	return h.offset(c)
}

func zeroOffset(calendar.Civil) time.Duration { return 0 }

// UTC is the fixed zero-offset handle.
var UTC = Handle{Name: "UTC", offset: zeroOffset}

// Resolver caches resolved zone handles for the life of the process.
// Entries are immutable once inserted and never evicted; a racing double
// resolution is harmless because the provider is deterministic per
// identifier.
type Resolver struct {
	provider Provider

	mu    sync.RWMutex
	cache map[string]Handle
}

// NewResolver creates a resolver backed by the given provider.
func NewResolver(provider Provider) *Resolver {
	return &Resolver{
		provider: provider,
		cache:    make(map[string]Handle),
	}
}

// Resolve returns the handle for identifier, degrading to a UTC-fallback
// handle (and caching the fallback) when the provider fails.
func (r *Resolver) Resolve(identifier string) Handle {
	h, _ := r.lookup(identifier)
	return h
}

// TryResolve is the strict variant of Resolve: the returned handle is always
// usable, but a fallback handle comes with an *UnknownZoneError.
func (r *Resolver) TryResolve(identifier string) (Handle, error) {
	h, ok := r.lookup(identifier)
	if !ok {
		return h, &UnknownZoneError{Identifier: strings.TrimSpace(identifier)}
	}
	return h, nil
}

// Size reports the number of cached zone entries.
func (r *Resolver) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

func (r *Resolver) lookup(identifier string) (Handle, bool) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return UTC, true
	}

	r.mu.RLock()
	h, hit := r.cache[id]
	r.mu.RUnlock()
	if hit {
		return h, !h.Fallback
	}

	offset, err := r.provider.ResolveZone(id)
	if err != nil {
		h = Handle{Name: id, Fallback: true, offset: zeroOffset}
	} else {
		h = Handle{Name: id, offset: offset}
	}

	r.mu.Lock()
	r.cache[id] = h
	r.mu.Unlock()

	return h, !h.Fallback
}
