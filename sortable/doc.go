// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so that they can be stored in sorted sequences
// without spelling out an ordering policy by hand.
//
// # Overview
//
// [Sortable] extends [github.com/arcticronin/SortedArray/compare.Comparable]
// with a LessThan method. [Policy] turns any Sortable type into a
// [github.com/arcticronin/SortedArray/compare.Policy], which is what
// [github.com/arcticronin/SortedArray/sequence.New] expects:
//
//	seq := sequence.NewSortable[sortable.Int]()
//	_ = seq.Insert(sortable.Int(42))
//	_ = seq.Insert(sortable.Int(10))
//	// seq.String() == "size: 2 | 10 42"
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface. Equals
// must agree with LessThan: two values that are Equals must not be LessThan
// one another.
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// The wrapper types also implement
// [github.com/arcticronin/SortedArray/hashing.Hashable], so sequences of them
// can be fingerprinted.
package sortable
