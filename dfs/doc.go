// Package dfs implements an iterative depth-first walker over implicit graphs.
//
// What:
//
//   - Walker[K]: explicit-stack DFS keyed by any comparable node type. The
//     caller supplies an expand function returning the successors of a node;
//     the walker guarantees expand runs at most once per node across all
//     Walk calls until Reset.
//   - FilterNeighbor option: skip nodes without marking them visited.
//   - OnVisit option: pre-order hook.
//
// Why:
//
//   - Supply-chain graphs are cyclic (returns, re-processing) and can be deep;
//     an explicit stack avoids recursion-depth limits and the visited set
//     guarantees termination.
//   - Alternating station/delivery traversals encode both kinds in one key
//     type and reuse a single walker.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of expand/filter/hooks.
//   - Memory: O(V) for the visited set, O(E) worst case for the stack.
//
// Order:
//
//	Successors are pushed in reverse so they are expanded in the order
//	expand returned them, matching the recursive pre-order.
package dfs
