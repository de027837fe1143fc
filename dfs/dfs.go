package dfs

// Walker encapsulates state during DFS: the visited set survives across
// Walk calls so several roots can share one traversal.
type Walker[K comparable] struct {
	opts    Options[K]
	visited map[K]struct{}
	stack   []K
	skipped int
}

// NewWalker creates a Walker with the given options applied.
func NewWalker[K comparable](opts ...Option[K]) *Walker[K] {
	o := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&o)
	}

	return &Walker[K]{
		opts:    o,
		visited: make(map[K]struct{}),
	}
}

// Walk traverses depth-first from each root in order, calling expand once for
// every newly visited node. Nodes already visited by an earlier Walk are not
// expanded again. It returns the number of nodes visited by this call.
func (w *Walker[K]) Walk(expand func(k K) []K, roots ...K) int {
	count := 0

	for _, root := range roots {
		w.push(root)

		for len(w.stack) > 0 {
			// 1. Pop
			k := w.stack[len(w.stack)-1]
			w.stack = w.stack[:len(w.stack)-1]

			// 2. Skip nodes reached twice before their first pop
			if _, seen := w.visited[k]; seen {
				continue
			}

			// 3. Mark visited, pre-order hook
			w.visited[k] = struct{}{}
			count++
			if w.opts.OnVisit != nil {
				w.opts.OnVisit(k)
			}

			// 4. Push successors in reverse to keep expand order
			next := expand(k)
			for i := len(next) - 1; i >= 0; i-- {
				w.push(next[i])
			}
		}
	}

	return count
}

// push appends k to the stack unless it is visited or filtered out.
func (w *Walker[K]) push(k K) {
	if _, seen := w.visited[k]; seen {
		return
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(k) {
		w.skipped++
		return
	}
	w.stack = append(w.stack, k)
}

// Visited reports whether k has been visited since the last Reset.
func (w *Walker[K]) Visited(k K) bool {
	_, ok := w.visited[k]

	return ok
}

// Count returns the number of visited nodes since the last Reset.
func (w *Walker[K]) Count() int { return len(w.visited) }

// Skipped returns how many pushes were rejected by FilterNeighbor.
func (w *Walker[K]) Skipped() int { return w.skipped }

// Reset clears the visited set and diagnostics, keeping options.
func (w *Walker[K]) Reset() {
	clear(w.visited)
	w.stack = w.stack[:0]
	w.skipped = 0
}
