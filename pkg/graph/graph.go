// Package graph provides the evidence graph used to link client records.
// Vertices are raw client identifiers qualified by the source that issued
// them, and edges are pieces of linkage evidence. Consumers only ever need
// connected components, never neighbor walks, so connectivity is tracked in a
// union-find arena rather than adjacency lists.
package graph

import (
	"github.com/bayesimpact/sf-homelessness/pkg/sources"
)

// Node identifies a vertex: a raw client identifier qualified by source.
// The same numeric identifier from different sources yields distinct nodes.
type Node struct {
	Tag sources.Tag
	ID  int64
}

// Graph is a union-find arena over nodes. Vertex insertion order is preserved
// and drives component enumeration, so two graphs built by the same sequence
// of Add and AddEdge calls enumerate identical partitions in identical order.
//
// Not safe for concurrent use.
type Graph struct {
	index  map[Node]int // node to arena slot
	nodes  []Node       // arena slot to node, in insertion order
	parent []int
	rank   []int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[Node]int)}
}

// NewWithCapacity returns an empty graph preallocated for n vertices.
func NewWithCapacity(n int) *Graph {
	return &Graph{
		index:  make(map[Node]int, n),
		nodes:  make([]Node, 0, n),
		parent: make([]int, 0, n),
		rank:   make([]int, 0, n),
	}
}

// Add interns v and returns its arena slot. Adding a vertex that is already
// present returns the slot it was first given.
func (g *Graph) Add(v Node) int {
	if i, ok := g.index[v]; ok {
		return i
	}
	i := len(g.nodes)
	g.index[v] = i
	g.nodes = append(g.nodes, v)
	g.parent = append(g.parent, i)
	g.rank = append(g.rank, 0)
	return i
}

// AddEdge interns both endpoints and merges their components. Self-loops and
// repeated edges leave the partition unchanged.
func (g *Graph) AddEdge(a, b Node) {
	g.union(g.Add(a), g.Add(b))
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Contains reports whether v has been interned.
func (g *Graph) Contains(v Node) bool {
	_, ok := g.index[v]
	return ok
}

// Nodes returns the vertices in insertion order. The slice is shared with the
// graph and must not be modified.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Clone returns an independent copy of the graph. Edges added to the clone
// never affect the receiver.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		index:  make(map[Node]int, len(g.index)),
		nodes:  append([]Node(nil), g.nodes...),
		parent: append([]int(nil), g.parent...),
		rank:   append([]int(nil), g.rank...),
	}
	for v, i := range g.index {
		c.index[v] = i
	}
	return c
}

// find returns the root slot of i, halving the path on the way up. The
// mutation changes internal parent pointers only, never the partition.
func (g *Graph) find(i int) int {
	for g.parent[i] != i {
		g.parent[i] = g.parent[g.parent[i]]
		i = g.parent[i]
	}
	return i
}

// union merges the sets holding slots a and b, by rank.
func (g *Graph) union(a, b int) {
	ra, rb := g.find(a), g.find(b)
	if ra == rb {
		return
	}
	if g.rank[ra] < g.rank[rb] {
		ra, rb = rb, ra
	}
	g.parent[rb] = ra
	if g.rank[ra] == g.rank[rb] {
		g.rank[ra]++
	}
}

// Component is one connected component. Members appear in vertex insertion
// order.
type Component struct {
	Members []Node
}

// IDs returns the raw identifiers of members carrying tag, in member order.
// The result may be empty: a component with no members from a source still
// occupies its position in the enumeration, which is what keeps labels
// consistent across sources.
func (c Component) IDs(tag sources.Tag) []int64 {
	var ids []int64
	for _, m := range c.Members {
		if m.Tag == tag {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// Components enumerates the connected components. A component's position is
// set by its earliest-inserted member, so repeated calls on an unmodified
// graph return the same partition in the same order.
func (g *Graph) Components() []Component {
	seen := make(map[int]int, len(g.nodes)) // root slot to component position
	comps := make([]Component, 0)
	for i := range g.nodes {
		root := g.find(i)
		k, ok := seen[root]
		if !ok {
			k = len(comps)
			seen[root] = k
			comps = append(comps, Component{})
		}
		comps[k].Members = append(comps[k].Members, g.nodes[i])
	}
	return comps
}
