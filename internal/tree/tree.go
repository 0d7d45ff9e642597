// Package tree provides a generic ancestor search over any type that can
// name its parent. The window interpreter uses it to walk snapshot parent
// links, but nothing here depends on windows.
package tree

// Parented is the capability of a node that can resolve its parent.
// The second return value is false at the root.
type Parented[T any] interface {
	Parent() (T, bool)
}

// maxDepth bounds the walk so a malformed parent cycle cannot hang the
// caller. Real window hierarchies are a handful of levels deep.
const maxDepth = 64

// FindAncestor walks the parent chain of start (excluding start itself)
// and returns the first ancestor for which pred is true. The walk ends
// without a match when stop returns true for a node (exclusive upper
// bound), at the root, or after maxDepth levels.
func FindAncestor[T Parented[T]](start T, stop func(T) bool, pred func(T) bool) (T, bool) {
	var zero T
	node, ok := start.Parent()
	for depth := 0; ok && depth < maxDepth; depth++ {
		if stop != nil && stop(node) {
			return zero, false
		}
		if pred(node) {
			return node, true
		}
		node, ok = node.Parent()
	}
	return zero, false
}

// HasAncestor reports whether any ancestor of start satisfies pred.
func HasAncestor[T Parented[T]](start T, pred func(T) bool) bool {
	_, ok := FindAncestor(start, nil, pred)
	return ok
}
