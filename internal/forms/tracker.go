package forms

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind names a form.
type Kind string

const (
	KindContact  Kind = "contact"
	KindDonation Kind = "donation"
)

// Instance is one rendered form and its submission state.
type Instance struct {
	ID      string
	Kind    Kind
	Machine *Machine

	mu       sync.Mutex
	currency string
	lastSeen time.Time
}

// Currency returns the active currency code chosen on this form, or "".
func (i *Instance) Currency() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.currency
}

func (i *Instance) setCurrency(code string) {
	i.mu.Lock()
	i.currency = code
	i.mu.Unlock()
}

func (i *Instance) touch(now time.Time) {
	i.mu.Lock()
	i.lastSeen = now
	i.mu.Unlock()
}

func (i *Instance) idleSince() time.Time {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.lastSeen
}

// Tracker keeps form instances in memory and forgets them after a period
// of inactivity.
type Tracker struct {
	mu         sync.Mutex
	instances  map[string]*Instance
	ttl        time.Duration
	max        int
	resetAfter time.Duration
	afterFunc  AfterFunc
	now        func() time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithAfterFunc sets the scheduler used by new machines.
func WithAfterFunc(f AfterFunc) TrackerOption {
	return func(t *Tracker) { t.afterFunc = f }
}

// WithNow sets the tracker clock.
func WithNow(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithMaxInstances caps live instances. When the cap is reached, Create
// drops the least recently seen instance that is not submitting. Zero
// means unbounded.
func WithMaxInstances(n int) TrackerOption {
	return func(t *Tracker) {
		if n > 0 {
			t.max = n
		}
	}
}

// NewTracker returns a Tracker that forgets instances unseen for ttl and
// resets finished submissions after resetAfter.
func NewTracker(ttl, resetAfter time.Duration, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		instances:  make(map[string]*Instance),
		ttl:        ttl,
		resetAfter: resetAfter,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Create registers a new idle instance, making room first when the tracker
// is at its cap.
func (t *Tracker) Create(kind Kind) *Instance {
	inst := &Instance{
		ID:       uuid.NewString(),
		Kind:     kind,
		Machine:  NewMachine(t.resetAfter, t.afterFunc),
		lastSeen: t.now(),
	}

	var dropped *Instance
	t.mu.Lock()
	if t.max > 0 && len(t.instances) >= t.max {
		dropped = t.oldestLocked()
		if dropped != nil {
			delete(t.instances, dropped.ID)
		}
	}
	t.instances[inst.ID] = inst
	t.mu.Unlock()

	if dropped != nil {
		dropped.Machine.Close()
	}
	return inst
}

// oldestLocked returns the least recently seen instance that is not
// waiting on delivery, or nil. Must be called with mu held.
func (t *Tracker) oldestLocked() *Instance {
	var oldest *Instance
	var oldestSeen time.Time
	for _, inst := range t.instances {
		if inst.Machine.State() == StateSubmitting {
			continue
		}
		seen := inst.idleSince()
		if oldest == nil || seen.Before(oldestSeen) {
			oldest, oldestSeen = inst, seen
		}
	}
	return oldest
}

// Get returns a live instance and marks it as seen.
func (t *Tracker) Get(id string) (*Instance, bool) {
	t.mu.Lock()
	inst, ok := t.instances[id]
	t.mu.Unlock()
	if !ok {
		return nil, false
	}
	inst.touch(t.now())
	return inst, true
}

// Resolve returns the instance with id when it exists and is of kind, or
// a fresh one. Forms posted after their instance expired still work.
func (t *Tracker) Resolve(id string, kind Kind) *Instance {
	if inst, ok := t.Get(id); ok && inst.Kind == kind {
		return inst
	}
	return t.Create(kind)
}

// Len returns the number of live instances.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.instances)
}

// Evict closes and drops instances unseen for longer than the TTL. An
// instance waiting on delivery is kept. It returns the number evicted.
func (t *Tracker) Evict() int {
	now := t.now()
	var evicted []*Instance

	t.mu.Lock()
	for id, inst := range t.instances {
		if now.Sub(inst.idleSince()) <= t.ttl || inst.Machine.State() == StateSubmitting {
			continue
		}
		delete(t.instances, id)
		evicted = append(evicted, inst)
	}
	t.mu.Unlock()

	for _, inst := range evicted {
		inst.Machine.Close()
	}
	return len(evicted)
}

// Run evicts every interval until ctx is done, then closes all instances.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			t.Close()
			return
		case <-ticker.C:
			t.Evict()
		}
	}
}

// Close closes every instance, cancelling pending resets.
func (t *Tracker) Close() {
	t.mu.Lock()
	all := t.instances
	t.instances = make(map[string]*Instance)
	t.mu.Unlock()

	for _, inst := range all {
		inst.Machine.Close()
	}
}
