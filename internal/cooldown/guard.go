package cooldown

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// FreeBoxWindow is the per-user cooldown for the free lootbox action.
// Priced boxes are never gated.
const FreeBoxWindow = 360 * time.Second

// lruSize bounds the expiring cache. Entries self-evict after the window,
// so the bound only matters under a burst of distinct users.
const lruSize = 100_000

// ErrOnCooldown is returned when the free box is still on cooldown
type ErrOnCooldown struct {
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	return fmt.Sprintf("⏳ Please wait %ds before opening another lootbox.", e.RetryAfterSeconds())
}

// RetryAfterSeconds reports the remaining wait, rounded up
func (e ErrOnCooldown) RetryAfterSeconds() int {
	return int((e.Remaining + time.Second - 1) / time.Second)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Result is the outcome of a guard check
type Result struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Guard rate-limits the free lootbox action per user.
//
// State is process-scoped and in-memory: created at start, never persisted,
// cleared on restart. Keys are the user ID alone, so a user's cooldown spans
// every channel. Check-and-stamp runs under a single mutex, so two
// concurrent requests inside the window can never both pass. The stamp is
// written before the caller performs the draw and is intentionally not
// rolled back if the draw later fails (optimistic consume).
//
// A horizontally scaled deployment would need to move this state to a shared
// keyed expiring store; one process, one guard.
type Guard struct {
	mu     sync.Mutex
	last   *expirable.LRU[string, time.Time]
	window time.Duration
	admins map[string]struct{}
}

// NewGuard creates a guard with the given window and admin allow-list.
// Admin usernames bypass the block but still stamp their timestamp.
func NewGuard(window time.Duration, admins []string) *Guard {
	set := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		set[a] = struct{}{}
	}
	return &Guard{
		last:   expirable.NewLRU[string, time.Time](lruSize, nil, window),
		window: window,
		admins: set,
	}
}

// IsAdmin reports whether a username is on the static allow-list
func (g *Guard) IsAdmin(username string) bool {
	_, ok := g.admins[username]
	return ok
}

// Check atomically decides whether userID may open a free box at now and,
// when allowed, consumes the cooldown by stamping now.
func (g *Guard) Check(userID, username string, now time.Time) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	lastCall, seen := g.last.Get(userID)
	if seen {
		elapsed := now.Sub(lastCall)
		if elapsed < g.window && !g.IsAdmin(username) {
			return Result{Allowed: false, RetryAfter: g.window - elapsed}
		}
	}

	g.last.Add(userID, now)
	return Result{Allowed: true}
}

// Reset clears a user's cooldown (admin/testing)
func (g *Guard) Reset(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last.Remove(userID)
}
