package compare

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collated orders strings by the collation rules of the given language, e.g.
// language.German places "ä" next to "a" rather than after "z". Options such
// as collate.IgnoreCase or collate.Numeric are passed through. Equal is
// collation-equivalence, so strings the collator cannot tell apart are
// treated as duplicates.
//
// The returned policy owns a collator, which keeps internal buffers; a
// Collated policy must not be used from several goroutines at once.
func Collated(tag language.Tag, opts ...collate.Option) Policy[string] {
	col := collate.New(tag, opts...)

	return Policy[string]{
		Less: func(a, b string) bool {
			return col.CompareString(a, b) < 0
		},
		Equal: func(a, b string) bool {
			return col.CompareString(a, b) == 0
		},
	}
}
