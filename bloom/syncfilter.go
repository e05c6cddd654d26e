package bloom

import "sync"

// SyncFilter is a Filter safe for concurrent use. Inserts and clears are
// exclusive, so a reader never sees some but not all of the k buckets of one
// insert.
type SyncFilter struct {
	mu sync.RWMutex
	f  *Filter
}

func NewSync(size uint, hashCount uint, opts ...Option) (*SyncFilter, error) {
	f, err := New(size, hashCount, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncFilter{f: f}, nil
}

func (s *SyncFilter) Insert(value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.Insert(value)
}

func (s *SyncFilter) InsertString(v string) { s.Insert([]byte(v)) }

// InsertValue encodes v outside the lock.
func (s *SyncFilter) InsertValue(v any) error {
	b, err := EncodeValue(v)
	if err != nil {
		return err
	}
	s.Insert(b)
	return nil
}

func (s *SyncFilter) Check(value []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.Check(value)
}

func (s *SyncFilter) CheckString(v string) bool { return s.Check([]byte(v)) }

func (s *SyncFilter) CheckValue(v any) (bool, error) {
	b, err := EncodeValue(v)
	if err != nil {
		return false, err
	}
	return s.Check(b), nil
}

func (s *SyncFilter) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.Clear()
}

func (s *SyncFilter) ErrorChance() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.ErrorChance()
}

func (s *SyncFilter) Len() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.Len()
}

func (s *SyncFilter) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.IsEmpty()
}

func (s *SyncFilter) FillRatio() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.FillRatio()
}

// Capacity and HashCount are fixed at construction and need no lock.
func (s *SyncFilter) Capacity() uint  { return s.f.Capacity() }
func (s *SyncFilter) HashCount() uint { return s.f.HashCount() }
