package searcher

import (
	"multiagent/game"

	"golang.org/x/exp/rand"
)

// mockNode is a hand-built game tree. Terminal nodes have an empty agent, nil children are
// illegal actions and value is what the evaluation function reports for the node.
type mockNode struct {
	agent    string
	children []*mockNode
	value    game.Score
}

type mockState struct {
	node *mockNode
}

func (m mockState) NextAgent() (string, bool) {
	return m.node.agent, m.node.agent != ""
}

func (m mockState) Successor(action int) (mockState, bool) {
	if action < 0 || action >= len(m.node.children) || m.node.children[action] == nil {
		return mockState{}, false
	}
	return mockState{node: m.node.children[action]}, true
}

const mockBranching = 4

func mockActions(yield func(int) bool) {
	for action := 0; action < mockBranching; action++ {
		if !yield(action) {
			return
		}
	}
}

func mockEvaluate(s mockState) game.Score {
	return s.node.value
}

func mockRoles(agent string) Role {
	role, err := ParseRole(agent)
	if err != nil {
		panic(err)
	}
	return role
}

// countingRoles wraps mockRoles and counts how often the classifier is consulted.
func countingRoles(calls *int) Classifier[string] {
	return func(agent string) Role {
		*calls++
		return mockRoles(agent)
	}
}

func leaf(value game.Score) *mockNode {
	return &mockNode{value: value}
}

func leaves(values ...game.Score) []*mockNode {
	nodes := make([]*mockNode, len(values))
	for i, v := range values {
		nodes[i] = leaf(v)
	}
	return nodes
}

func maxNode(children ...*mockNode) *mockNode {
	return &mockNode{agent: "max", children: children}
}

func minNode(children ...*mockNode) *mockNode {
	return &mockNode{agent: "min", children: children}
}

func chanceNode(children ...*mockNode) *mockNode {
	return &mockNode{agent: "random", children: children}
}

// randomTree builds an alternating max/min tree with holes (illegal actions), some interior
// nodes without any legal action, and small integer values so that ties are common.
func randomTree(r *rand.Rand, depth int, agent string) *mockNode {
	node := &mockNode{value: game.Score(r.Intn(11) - 5)}
	if depth == 0 || r.Intn(6) == 0 {
		return node
	}

	node.agent = agent
	next := "min"
	if agent == "min" {
		next = "max"
	}
	node.children = make([]*mockNode, mockBranching)
	for i := range node.children {
		if r.Intn(4) == 0 { // Illegal action
			continue
		}
		node.children[i] = randomTree(r, depth-1, next)
	}
	return node
}

// fullMinimax is an unpruned reference implementation over mock trees.
func fullMinimax(node *mockNode) game.Score {
	if node.agent == "" {
		return node.value
	}

	var best game.Score
	found := false
	for _, child := range node.children {
		if child == nil {
			continue
		}
		v := fullMinimax(child)
		if !found || (node.agent == "max" && v > best) || (node.agent == "min" && v < best) {
			best = v
			found = true
		}
	}
	if !found {
		return node.value
	}
	return best
}
