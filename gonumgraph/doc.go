// Package gonumgraph bridges algebra graphs and gonum's graph/simple types.
//
// Export (ToDirected, ToUndirected, FromView) lets gonum's traversal,
// path and topology packages run on a matrix built with the algebra.
// Import (FromGonum) turns any gonum weighted graph with node IDs
// 0..n-1 and integral weights back into an *algebra.Graph.
//
// Vertex u of the matrix is gonum node ID int64(u). Absent edges report
// math.Inf(1) from Weight, the convention gonum's shortest-path code expects;
// a node's weight to itself is 0.
package gonumgraph
