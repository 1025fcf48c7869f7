package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// IterSliceRef yields the offset of each slice element, plus a pointer to it,
// with the offset shifted by base.
func IterSliceRef[K ~int, T any](base K, items []T) iter.Seq2[K, *T] {
	return func(yield func(K, *T) bool) {
		for n := range items {
			if !yield(base+K(n), &items[n]) {
				return
			}
		}
	}
}
