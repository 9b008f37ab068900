package graph

// Graph is an adjacency list over nodes 0..n-1.
type Graph struct {
	adj [][]int
}

// NewGraph returns an edgeless graph with n nodes.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{adj: make([][]int, n)}
}

// AddEdge inserts an undirected edge. Out-of-range endpoints are dropped.
func (g *Graph) AddEdge(u, v int) {
	if g.valid(u) && g.valid(v) {
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}
}

// AddDirected inserts a directed edge. Out-of-range endpoints are dropped.
func (g *Graph) AddDirected(u, v int) {
	if g.valid(u) && g.valid(v) {
		g.adj[u] = append(g.adj[u], v)
	}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// EdgeCount counts stored arcs; an undirected edge is counted twice.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, nbrs := range g.adj {
		count += len(nbrs)
	}
	return count
}

// Degree returns the out-degree of u, 0 for an invalid node.
func (g *Graph) Degree(u int) int {
	if !g.valid(u) {
		return 0
	}
	return len(g.adj[u])
}

// Neighbors returns u's adjacency slice, nil for an invalid node. Callers
// must not mutate it.
func (g *Graph) Neighbors(u int) []int {
	if !g.valid(u) {
		return nil
	}
	return g.adj[u]
}

func (g *Graph) valid(u int) bool {
	return u >= 0 && u < len(g.adj)
}

// WeightedEdge is one arc of a WeightedGraph.
type WeightedEdge struct {
	To     int
	Weight int64
}

// WeightedGraph is an adjacency list with per-edge weights.
type WeightedGraph struct {
	adj [][]WeightedEdge
}

// NewWeightedGraph returns an edgeless weighted graph with n nodes.
func NewWeightedGraph(n int) *WeightedGraph {
	if n < 0 {
		n = 0
	}
	return &WeightedGraph{adj: make([][]WeightedEdge, n)}
}

// AddEdge inserts an undirected weighted edge. Out-of-range endpoints are
// dropped.
func (g *WeightedGraph) AddEdge(u, v int, w int64) {
	if g.valid(u) && g.valid(v) {
		g.adj[u] = append(g.adj[u], WeightedEdge{To: v, Weight: w})
		g.adj[v] = append(g.adj[v], WeightedEdge{To: u, Weight: w})
	}
}

// AddDirected inserts a directed weighted edge. Out-of-range endpoints are
// dropped.
func (g *WeightedGraph) AddDirected(u, v int, w int64) {
	if g.valid(u) && g.valid(v) {
		g.adj[u] = append(g.adj[u], WeightedEdge{To: v, Weight: w})
	}
}

// NodeCount returns the number of nodes.
func (g *WeightedGraph) NodeCount() int {
	return len(g.adj)
}

// Degree returns the out-degree of u, 0 for an invalid node.
func (g *WeightedGraph) Degree(u int) int {
	if !g.valid(u) {
		return 0
	}
	return len(g.adj[u])
}

// Neighbors returns u's adjacency slice, nil for an invalid node.
func (g *WeightedGraph) Neighbors(u int) []WeightedEdge {
	if !g.valid(u) {
		return nil
	}
	return g.adj[u]
}

func (g *WeightedGraph) valid(u int) bool {
	return u >= 0 && u < len(g.adj)
}
