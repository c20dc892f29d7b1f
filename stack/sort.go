package stack

import "golang.org/x/exp/constraints"

// Sort drains in into a new stack ordered so that the top holds the
// greatest value according to cmp. cmp follows the usual convention:
// positive when a is greater than b.
func Sort[T any](in *Stack[T], cmp func(a, b T) int) *Stack[T] {
	out := New[T]()
	for !in.IsEmpty() {
		v, _ := in.Pop()
		for !out.IsEmpty() {
			top, _ := out.Top()
			if cmp(top, v) <= 0 {
				break
			}
			top, _ = out.Pop()
			in.Push(top)
		}
		out.Push(v)
	}
	return out
}

// ByKey builds an ascending comparator from a key function.
func ByKey[T any, K constraints.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	}
}
