package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cpkit"
)

var (
	// ErrNoVertices indicates a graph with no vertices.
	ErrNoVertices = errors.New("mst: graph has no vertices")

	// ErrVertexOutOfRange indicates an edge endpoint or root outside [0, n).
	ErrVertexOutOfRange = fmt.Errorf("mst: vertex out of range: %w", cpkit.ErrInvalidArgument)

	// ErrDisconnected indicates that no spanning tree covers all vertices.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates an unsupported Options.Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected weighted edge between vertices U and V.
type Edge struct {
	U, V int
	W    int64
}

// Options configures Compute.
//
//	Method - MethodKruskal (default) or MethodPrim.
//	Root   - start vertex for Prim; ignored by Kruskal.
type Options struct {
	Method string
	Root   int
}

// Option configures Options.
type Option func(*Options)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRoot sets the starting vertex for Prim.
func WithRoot(root int) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// DefaultOptions returns Kruskal with root 0.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Root: 0}
}
