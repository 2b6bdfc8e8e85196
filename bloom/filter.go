// Package bloom provides a probabilistic set of entry names using Bloom
// filters.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// minCapacity keeps tiny filters from degenerating to a few bits.
const minCapacity = 1024

// Filter records entry names. Names are compared without case, matching
// the uniqueness rule of the entry store.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected names
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(max(n, minCapacity), fpRate),
	}
}

// Add adds a name to the filter.
func (f *Filter) Add(name string) {
	f.f.AddString(strings.ToLower(name))
}

// Test returns true if the name might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(name string) bool {
	return f.f.TestString(strings.ToLower(name))
}

