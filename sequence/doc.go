// Package sequence provides Sequence, a generic container that keeps its
// elements sorted at all times.
//
// The order and the notion of equality are supplied as a compare.Policy, so
// the same element type can live in several sequences with different orders:
//
//	scores := sequence.NewOrdered[int]()
//	_ = scores.InsertAll(5, 1, 3)
//	fmt.Println(scores) // size: 3 | 1 3 5
//
//	names := sequence.New(compare.Natural())
//
// Storage is a single flat slice whose length always equals its capacity.
// Every mutation builds a replacement buffer and swaps it in only once the
// whole operation has succeeded, so a failing element copy (see WithCopier)
// or conversion (see Convert) leaves the sequence exactly as it was.
// Insertion, removal and lookup are linear scans.
//
// Elements that compare equal under the policy may appear more than once. A
// newly inserted element is placed after every element it is equivalent to.
//
// A Sequence is not safe for concurrent use.
package sequence
