// SPDX-License-Identifier: MIT

package lct

import (
	"sync"
)

// Synchronized guards a Forest with a single mutex.
//
// Every Forest operation, queries included, restructures splay trees along
// an unbounded chain of ancestors, so a read/write split is not possible:
// one exclusive lock per forest is the only safe granularity.
//
// Every public Forest operation has a locked forwarder; Do covers sequences
// that must be atomic together.
type Synchronized struct {
	mu sync.Mutex
	f  *Forest
}

// NewSynchronized wraps f. f must not be used directly afterwards.
func NewSynchronized(f *Forest) *Synchronized {
	return &Synchronized{f: f}
}

// Do runs fn with exclusive access to the underlying forest. Use it to make a
// sequence of operations atomic.
func (s *Synchronized) Do(fn func(f *Forest)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.f)
}

// Link is Forest.Link under the lock.
func (s *Synchronized) Link(u, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Link(u, v)
}

// Cut is Forest.Cut under the lock.
func (s *Synchronized) Cut(u, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Cut(u, v)
}

// Connected is Forest.Connected under the lock.
func (s *Synchronized) Connected(u, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Connected(u, v)
}

// SetValue is Forest.SetValue under the lock.
func (s *Synchronized) SetValue(u int, val Scalar) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.SetValue(u, val)
}

// Path is Forest.Path under the lock.
func (s *Synchronized) Path(u, v int) (PathAggregate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Path(u, v)
}

// PathAdd is Forest.PathAdd under the lock.
func (s *Synchronized) PathAdd(u, v int, delta Scalar) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.PathAdd(u, v, delta)
}

// SubtreeSumFrom is Forest.SubtreeSumFrom under the lock.
func (s *Synchronized) SubtreeSumFrom(u, root int) (Scalar, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.SubtreeSumFrom(u, root)
}

// Components is Forest.Components under the lock.
func (s *Synchronized) Components() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Components()
}

// Value is Forest.Value under the lock.
func (s *Synchronized) Value(u int) Scalar {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Value(u)
}

// MakeRoot is Forest.MakeRoot under the lock.
func (s *Synchronized) MakeRoot(u int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.MakeRoot(u)
}

// FindRoot is Forest.FindRoot under the lock.
func (s *Synchronized) FindRoot(u int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.FindRoot(u)
}

// PathSum is Forest.PathSum under the lock.
func (s *Synchronized) PathSum(u, v int) (Scalar, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.PathSum(u, v)
}

// PathMin is Forest.PathMin under the lock.
func (s *Synchronized) PathMin(u, v int) (Scalar, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.PathMin(u, v)
}

// PathMax is Forest.PathMax under the lock.
func (s *Synchronized) PathMax(u, v int) (Scalar, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.PathMax(u, v)
}

// PathXor is Forest.PathXor under the lock.
func (s *Synchronized) PathXor(u, v int) (Scalar, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.PathXor(u, v)
}

// SubtreeSum is Forest.SubtreeSum under the lock.
func (s *Synchronized) SubtreeSum(u int) Scalar {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.SubtreeSum(u)
}

// LCA is Forest.LCA under the lock.
func (s *Synchronized) LCA(u, v int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.LCA(u, v)
}

// Parent is Forest.Parent under the lock.
func (s *Synchronized) Parent(u int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Parent(u)
}
