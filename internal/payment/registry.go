// Package payment checks mobile-payment references entered at checkout.
package payment

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bits-and-blooms/bloom/v3"
)

// MaxRefLength matches the storefront input limit
const MaxRefLength = 8

var (
	ErrMissingRef = errors.New("payment reference is required")
	ErrRefTooLong = errors.New("payment reference is longer than 8 characters")
)

// NormalizeRef trims the reference; it must be non-empty and at most MaxRefLength characters
func NormalizeRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrMissingRef
	}
	if utf8.RuneCountInString(ref) > MaxRefLength {
		return "", ErrRefTooLong
	}
	return ref, nil
}

// Registry remembers payment references seen on orders so the console can flag likely reuse.
// It is a bloom filter only: Seen may report a false positive, never a false negative.
// It never blocks a checkout.
type Registry struct {
	filter *bloom.BloomFilter
	added  int
	mu     sync.RWMutex
}

// NewRegistry creates a registry sized for the expected number of references
func NewRegistry(expected uint) *Registry {
	if expected == 0 {
		expected = 1024
	}
	return &Registry{
		filter: bloom.NewWithEstimates(expected, 0.001),
	}
}

// Seed records references from existing orders
func (r *Registry) Seed(refs ...string) {
	for _, ref := range refs {
		r.Record(ref)
	}
}

// Record adds a reference; blank references are ignored
func (r *Registry) Record(ref string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.filter.AddString(ref)
	r.added++
}

// Seen reports whether the reference was probably recorded before
func (r *Registry) Seen(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter.TestString(ref)
}

// Len returns how many references were recorded, duplicates included
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.added
}
