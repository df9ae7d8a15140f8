// Package debounce coalesces bursts of per-key events into one callback
// after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is the delay after the last edit before a row is saved.
const DefaultQuietPeriod = 400 * time.Millisecond

// Timer is the part of *time.Timer the debouncer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc arms a timer that calls f once d has elapsed.
type AfterFunc func(d time.Duration, f func()) Timer

// RealAfterFunc schedules on the runtime timer.
func RealAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type options struct {
	quiet time.Duration
	after AfterFunc
}

// Option configures a Debouncer.
type Option func(*options)

// WithQuietPeriod overrides DefaultQuietPeriod.
func WithQuietPeriod(d time.Duration) Option {
	return func(o *options) {
		o.quiet = d
	}
}

// WithAfterFunc replaces the timer source, mostly for tests.
func WithAfterFunc(f AfterFunc) Option {
	return func(o *options) {
		o.after = f
	}
}

type pending struct {
	timer Timer
	gen   uint64
}

// Debouncer runs fire(key) once no Schedule(key) happened for the quiet period.
// Keys are independent of each other.
type Debouncer[K comparable] struct {
	mu      sync.Mutex
	opts    options
	fire    func(K)
	pending map[K]*pending
	gen     uint64
}

// New creates a Debouncer that calls fire for every key whose quiet period elapses.
// fire runs on the timer goroutine without any debouncer lock held.
func New[K comparable](fire func(K), opts ...Option) *Debouncer[K] {
	o := options{quiet: DefaultQuietPeriod, after: RealAfterFunc}
	for _, opt := range opts {
		opt(&o)
	}
	return &Debouncer[K]{
		opts:    o,
		fire:    fire,
		pending: make(map[K]*pending),
	}
}

// Schedule restarts the quiet period of key.
func (d *Debouncer[K]) Schedule(key K) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending[key] = &pending{
		timer: d.opts.after(d.opts.quiet, func() { d.expire(key, gen) }),
		gen:   gen,
	}
}

// CancelAll drops every pending callback and returns how many were dropped.
func (d *Debouncer[K]) CancelAll() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(d.pending)
	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
	}
	return n
}

// Pending reports whether key has a callback waiting.
func (d *Debouncer[K]) Pending(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

func (d *Debouncer[K]) expire(key K, gen uint64) {
	d.mu.Lock()
	p, ok := d.pending[key]
	// A Stop that lost the race against the timer leaves a stale callback behind.
	if !ok || p.gen != gen {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	d.fire(key)
}
