package sequence

// Filter returns a new sequence with the elements that satisfy pred. The
// result shares the policy, copier, name and logger of s, owns its own
// copies and records no metrics. s is never modified. If copying an element
// fails, the partial result is discarded and the error returned.
func (s *Sequence[T]) Filter(pred func(T) bool) (*Sequence[T], error) {
	out := s.emptyLike()

	// Back to front, so each accepted element sorts at or before the current
	// front of the result.
	for i := len(s.items) - 1; i >= 0; i-- {
		if !pred(s.items[i]) {
			continue
		}

		if err := out.Insert(s.items[i]); err != nil {
			out.MakeEmpty()
			s.log.Debug("filter abandoned", "index", i)

			return nil, err
		}
	}

	return out, nil
}
