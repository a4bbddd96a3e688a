// Package trie implements a Patricia trie (path-compressed prefix tree) over
// a word list. Branch points of the tree, nodes where the vocabulary
// diverges, are the candidate morpheme boundaries of the segmentation
// algorithm.
package trie // import "morphseg.io/morphseg/trie"

import (
	"errors"
	"sort"
	"strings"

	"fortio.org/safecast"
	"fortio.org/sets"
)

// node is one arena entry. label is the edge substring consumed when
// entering the node from its parent (possibly several bytes long, thanks to
// path compression). children maps the first byte of each outgoing edge to
// the arena index of the child.
type node struct {
	label    string
	children map[byte]int32
	terminal bool
}

// Trie owns its nodes in a single arena slice, addressed by index instead of
// pointers. nodes[0] is the root and the only node with an empty label.
type Trie struct {
	nodes []node
	words int
}

var ErrEmptyWord = errors.New("empty word")

func New() *Trie {
	return &Trie{nodes: []node{{}}}
}

// NumWords returns how many distinct words have been inserted.
func (t *Trie) NumWords() int {
	return t.words
}

// NumNodes returns the arena size, root included.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

func (t *Trie) alloc(n node) int32 {
	idx := safecast.MustConvert[int32](len(t.nodes))
	t.nodes = append(t.nodes, n)
	return idx
}

func commonPrefixLen(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i
}

// Insert adds word to the trie, splitting an existing edge when the word
// diverges in the middle of one. Inserting a word twice is a no-op.
func (t *Trie) Insert(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	cur := int32(0)
	rest := word
	for {
		child, ok := t.nodes[cur].children[rest[0]]
		if !ok {
			// No edge starts with this byte: new terminal leaf.
			leaf := t.alloc(node{label: rest, terminal: true})
			if t.nodes[cur].children == nil {
				t.nodes[cur].children = make(map[byte]int32)
			}
			t.nodes[cur].children[rest[0]] = leaf
			t.words++
			return nil
		}
		label := t.nodes[child].label
		n := commonPrefixLen(label, rest)
		switch {
		case n == len(label) && n == len(rest):
			// Word ends exactly on an existing node.
			if !t.nodes[child].terminal {
				t.nodes[child].terminal = true
				t.words++
			}
			return nil
		case n == len(label):
			// Edge fully consumed, keep descending.
			cur = child
			rest = rest[n:]
		default:
			// Divergence inside the edge: split it. The intermediate node
			// takes the shared prefix, the old subtree hangs under it via
			// the non-shared remainder.
			inter := t.alloc(node{
				label:    label[:n],
				children: map[byte]int32{label[n]: child},
			})
			t.nodes[child].label = label[n:]
			t.nodes[cur].children[rest[0]] = inter
			if n == len(rest) {
				// New word ends exactly at the shared prefix.
				t.nodes[inter].terminal = true
			} else {
				leaf := t.alloc(node{label: rest[n:], terminal: true})
				t.nodes[inter].children[rest[n]] = leaf
			}
			t.words++
			return nil
		}
	}
}

// Contains reports whether word was inserted. Diagnostic only, the
// segmentation pipeline never needs it.
func (t *Trie) Contains(word string) bool {
	cur := int32(0)
	rest := word
	for rest != "" {
		child, ok := t.nodes[cur].children[rest[0]]
		if !ok {
			return false
		}
		label := t.nodes[child].label
		if !strings.HasPrefix(rest, label) {
			// Ends mid-edge, so it was never inserted as a word.
			return false
		}
		rest = rest[len(label):]
		cur = child
	}
	return cur != 0 && t.nodes[cur].terminal
}

// Boundaries replays word's path through the trie and returns the byte
// offsets at which it crosses a divergent node. A node diverges when it has
// two or more children, or is terminal and still has a child: the
// end-of-word marker acts as one more outgoing edge. Offsets are strictly
// interior, the root (offset 0) and the word's own end are never reported.
func (t *Trie) Boundaries(word string) sets.Set[int] {
	offsets := sets.New[int]()
	cur := int32(0)
	depth := 0
	for depth < len(word) {
		child, ok := t.nodes[cur].children[word[depth]]
		if !ok {
			break
		}
		label := t.nodes[child].label
		if !strings.HasPrefix(word[depth:], label) {
			break
		}
		depth += len(label)
		if depth < len(word) && t.divergent(child) {
			offsets.Add(depth)
		}
		cur = child
	}
	return offsets
}

func (t *Trie) divergent(idx int32) bool {
	n := &t.nodes[idx]
	return len(n.children) >= 2 || (n.terminal && len(n.children) >= 1)
}

// Words returns every inserted word, sorted. The terminal paths of the trie
// are exactly the inserted vocabulary, so this doubles as a shape check in
// tests.
func (t *Trie) Words() []string {
	out := make([]string, 0, t.words)
	var rec func(idx int32, prefix string)
	rec = func(idx int32, prefix string) {
		n := t.nodes[idx]
		path := prefix + n.label
		if n.terminal {
			out = append(out, path)
		}
		for _, child := range n.children {
			rec(child, path)
		}
	}
	rec(0, "")
	sort.Strings(out)
	return out
}
