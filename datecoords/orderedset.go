// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package datecoords

// orderedSet keeps unique values in insertion order.
type orderedSet[K comparable] struct {
	values []K
	index  map[K]struct{}
}

func newOrderedSet[K comparable](capacity int) *orderedSet[K] {
	return &orderedSet[K]{
		values: make([]K, 0, capacity),
		index:  make(map[K]struct{}, capacity),
	}
}

// add appends v unless already present and reports whether it was added.
func (s *orderedSet[K]) add(v K) bool {
	if _, ok := s.index[v]; ok {
		return false
	}

	s.index[v] = struct{}{}
	s.values = append(s.values, v)

	return true
}

