// Package bloom screens keys with a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter answers whether a key may have been added. A negative answer is
// exact; a positive one may be a false positive and needs confirming.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n expected keys with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(max(n, 1), fpRate),
	}
}

// Add adds key to the filter.
func (f *Filter) Add(key string) {
	f.f.AddString(key)
}

// Test returns true if key might have been added.
func (f *Filter) Test(key string) bool {
	return f.f.TestString(key)
}
