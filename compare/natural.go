package compare

import "facette.io/natsort"

// Natural orders strings the way a person would: runs of digits compare by
// numeric value, so "file2" sorts before "file10". Equal is plain string
// equality.
//
// natsort.Compare is not strict ("file02" and "file2" each precede the
// other), so ties fall back to byte order to keep the relation a strict
// total order that agrees with Equal.
func Natural() Policy[string] {
	return Policy[string]{
		Less: func(a, b string) bool {
			if a == b {
				return false
			}

			ab, ba := natsort.Compare(a, b), natsort.Compare(b, a)
			if ab == ba {
				return a < b
			}

			return ab
		},
		Equal: func(a, b string) bool {
			return a == b
		},
	}
}
