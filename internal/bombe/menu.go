package bombe

import (
	"fmt"

	"github.com/forcedentropy/enigma/internal/alphabet"
	"github.com/forcedentropy/enigma/internal/errs"
)

// nodeState disambiguates the node-presence, DFS-visited, and
// destruction-marked meanings the original diagonal-of-the-matrix encoding
// conflated, per spec.md §9's re-architecture note.
type nodeState int

const (
	nodeAbsent nodeState = iota
	nodeUnvisited
	nodeVisited
	nodeDestroyed
)

const noEdge = -1

// Menu is the undirected multigraph extracted from a ciphertext/crib pair:
// an edge between cipher-letter i and crib-letter j labeled with the
// ciphertext offset that produced it (spec.md §3, §4.6).
type Menu struct {
	edges  [26][26]int // noEdge, or crib offset k >= 1.
	state  [26]nodeState
	adj    [26][]int // adjacency cache, built once after pruning.
	mostConnected int
}

// NewMenu builds the menu from a ciphertext/crib pair of equal length,
// selects the connected subgraph with the most loops (ties broken by node
// count), destroys every other subgraph, and caches adjacency lists.
func NewMenu(cipherText, crib string) (*Menu, error) {
	if len(cipherText) != len(crib) {
		return nil, fmt.Errorf("%w: ciphertext and crib must be equal length", errs.ErrInvalidInput)
	}

	m := &Menu{}
	for i := range m.edges {
		for j := range m.edges[i] {
			m.edges[i][j] = noEdge
		}
	}

	for k := 0; k < len(cipherText); k++ {
		t := alphabet.ToIndex(cipherText[k])
		b := alphabet.ToIndex(crib[k])

		if t == b {
			return nil, fmt.Errorf("%w: crib and cipher text agree at position %d", errs.ErrInvalidInput, k)
		}

		m.edges[t][b] = k + 1
		m.edges[b][t] = k + 1
		m.state[t] = nodeUnvisited
		m.state[b] = nodeUnvisited
	}

	if err := m.selectBestComponent(); err != nil {
		return nil, err
	}

	m.buildAdjacencyCache()

	return m, nil
}

// selectBestComponent runs a DFS from every still-unvisited node, tracks
// the component with the most loops (ties broken by node count), and
// destroys every other component, leaving exactly one surviving
// component. Its most-connected node becomes MostConnected.
func (m *Menu) selectBestComponent() error {
	explored := make(map[int]struct{})

	bestRoot := -1
	bestMostConnected := -1
	bestLoops := -1
	bestNodes := -1

	for i := 0; i < 26; i++ {
		if m.state[i] != nodeUnvisited {
			continue
		}

		result := m.dfs(explored, i)

		if result.loops > bestLoops || (result.loops == bestLoops && result.nodes > bestNodes) {
			if bestRoot != -1 {
				m.destroyComponent(bestRoot)
			}
			bestRoot = i
			bestLoops = result.loops
			bestNodes = result.nodes
			bestMostConnected = result.mostConnected
		} else {
			m.destroyComponent(i)
		}
	}

	if bestRoot == -1 {
		return errs.ErrEmptyMenu
	}

	m.mostConnected = bestMostConnected
	return nil
}

type dfsResult struct {
	loops         int
	nodes         int
	mostConnected int
}

// dfs walks the component containing root using an explicit stack,
// marking every node it visits nodeVisited, counting loops (edges whose
// far endpoint was already visited) and returning the node with the most
// neighbors within this component.
func (m *Menu) dfs(explored map[int]struct{}, root int) dfsResult {
	loops := 0
	nodes := 0
	maxConnections := -1
	maxConnectedNode := root

	stack := []int{root}
	m.state[root] = nodeVisited

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		connections := 0
		for v := 0; v < 26; v++ {
			if v == u || m.edges[u][v] == noEdge {
				continue
			}
			connections++

			edgeKey := u*26 + v
			if u > v {
				edgeKey = v*26 + u
			}
			if _, seen := explored[edgeKey]; seen {
				continue
			}
			explored[edgeKey] = struct{}{}

			switch m.state[v] {
			case nodeUnvisited:
				m.state[v] = nodeVisited
				stack = append(stack, v)
			case nodeVisited:
				loops++
			}
		}

		if connections > maxConnections {
			maxConnections = connections
			maxConnectedNode = u
		}
	}

	return dfsResult{loops: loops, nodes: nodes, mostConnected: maxConnectedNode}
}

// destroyComponent walks every nodeVisited node reachable from root (a
// component an earlier DFS marked: either the one just explored or the
// previous best it displaced) and clears its row/column from
// the edge matrix, removing it from the menu entirely.
func (m *Menu) destroyComponent(root int) {
	stack := []int{root}
	m.state[root] = nodeDestroyed

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for v := 0; v < 26; v++ {
			if m.edges[u][v] != noEdge && m.state[v] == nodeVisited {
				m.state[v] = nodeDestroyed
				stack = append(stack, v)
			}
		}
	}

	for i := 0; i < 26; i++ {
		if m.state[i] != nodeDestroyed {
			continue
		}
		for j := 0; j < 26; j++ {
			m.edges[i][j] = noEdge
			m.edges[j][i] = noEdge
		}
	}
}

func (m *Menu) buildAdjacencyCache() {
	for i := 0; i < 26; i++ {
		var neighbors []int
		for j := 0; j < 26; j++ {
			if j != i && m.edges[i][j] != noEdge {
				neighbors = append(neighbors, j)
			}
		}
		m.adj[i] = neighbors
	}
}

// CribOffset returns the ciphertext offset labeling the edge between a and
// b: the amount to add to the scrambler's right-rotor shift to traverse
// this edge.
func (m *Menu) CribOffset(a, b int) int {
	return m.edges[a][b]
}

// MostConnected returns the surviving component's highest-degree node,
// i.e. the Bombe's test register.
func (m *Menu) MostConnected() int {
	return m.mostConnected
}

// Adjacent returns the ordered neighbor list of letter within the
// surviving component.
func (m *Menu) Adjacent(letter int) []int {
	return m.adj[letter]
}
