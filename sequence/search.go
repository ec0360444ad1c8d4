package sequence

// SearchSorted returns the index at which item would be inserted: the first
// index whose element sorts after item, or Len() if there is none.
func (s *Sequence[T]) SearchSorted(item T) int {
	return s.searchSorted(s.items, item)
}

func (s *Sequence[T]) searchSorted(items []T, item T) int {
	for i, e := range items {
		if s.policy.Less(item, e) {
			return i
		}
	}

	return len(items)
}

// IndexOf returns the index of the first element equal to target. The scan
// stops at the first element that sorts after target, since nothing beyond
// it can match.
func (s *Sequence[T]) IndexOf(target T) (int, bool) {
	for i, e := range s.items {
		if s.policy.Equal(target, e) {
			return i, true
		}

		if s.policy.Less(target, e) {
			s.metrics.exitedEarly()

			if s.traceLookups {
				s.log.Debug("lookup stopped early", "index", i, "length", len(s.items))
			}

			return -1, false
		}
	}

	return -1, false
}

// Contains reports whether an element equal to target is present.
func (s *Sequence[T]) Contains(target T) bool {
	_, found := s.IndexOf(target)

	return found
}
