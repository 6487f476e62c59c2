package flagvalue

import (
	"strings"

	"braces.dev/errtrace"
)

// List is a flag.Getter that collects every instance of a repeated flag.
//
// Each argument may hold several comma-separated values,
// so both of the following record "a.html" and "b.html":
//
//	-skip a.html -skip b.html
//	-skip a.html,b.html
//
// Blank entries are ignored.
type List[T any, PT Getter[T]] []T

// ListOf records the values of a repeated flag into vs.
//
//	flag.Var(flagvalue.ListOf(&skip), "skip", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the recorded values as a []T.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String returns the recorded values as a comma-separated list.
func (lv *List[T, PT]) String() string {
	items := make([]string, len(*lv))
	for i := range *lv {
		items[i] = PT(&(*lv)[i]).String()
	}
	return strings.Join(items, ",")
}

// Set records the values in a single flag argument.
// Nothing is recorded if any of them is invalid.
func (lv *List[T, PT]) Set(s string) error {
	var vs []T
	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		var v T
		if err := PT(&v).Set(item); err != nil {
			return errtrace.Wrap(err)
		}
		vs = append(vs, v)
	}
	*lv = append(*lv, vs...)
	return nil
}
