package trie

import "strings"

const (
	// Wildcard matches any single label.
	Wildcard = "*"

	// ExceptionMarker prefixes the last label of an exception rule.
	ExceptionMarker = "!"

	rootIdx int32 = 0
)

// SuffixTrie stores public suffix rules as a label trie.
//
// Rules are inserted with their labels most significant first, so
// "*.kawasaki.jp" is the path jp -> kawasaki -> *.
// A node is terminal if the path from the root up to and including it
// is a valid public suffix boundary.
//
// Nodes live in a single slice and reference their children by index.
// Once built, a `SuffixTrie` is never modified: concurrent searches
// don't need any locking.
type SuffixTrie struct {
	nodes []node
}

type node struct {
	children map[string]int32
	terminal bool
}

// Match is a label matched during a search, with the terminal flag
// of the node it matched.
type Match struct {
	Label    string
	Terminal bool
}

func New() *SuffixTrie {
	return &SuffixTrie{
		nodes: []node{{}},
	}
}

// IsEmpty returns true if no rule was inserted.
func (t *SuffixTrie) IsEmpty() bool {
	return len(t.nodes[rootIdx].children) == 0
}

// Len returns the number of nodes, root excluded.
func (t *SuffixTrie) Len() int {
	return len(t.nodes) - 1
}

// Insert adds a rule given as labels, most significant first.
//
// If the last label starts with "!" the rule is an exception: the marker is
// stripped and the last node is not marked as terminal.
// A node directly above a trailing wildcard is also marked as terminal.
func (t *SuffixTrie) Insert(labels []string) {
	count := len(labels)
	if count == 0 {
		return
	}

	cur := rootIdx

	for i, label := range labels {
		isLast := i == count-1
		isException := false

		if isLast && strings.HasPrefix(label, ExceptionMarker) {
			label = label[len(ExceptionMarker):]
			isException = true
		}

		next := t.child(cur, label)

		if (isLast && !isException) ||
			(label != Wildcard && i == count-2 && labels[count-1] == Wildcard) {
			t.nodes[next].terminal = true
		}

		cur = next
	}
}

// child returns the index of `label` under `parent`, creating it if needed.
func (t *SuffixTrie) child(parent int32, label string) int32 {
	if idx, ok := t.nodes[parent].children[label]; ok {
		return idx
	}

	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{})

	if t.nodes[parent].children == nil {
		t.nodes[parent].children = make(map[string]int32, 1)
	}

	t.nodes[parent].children[label] = idx

	return idx
}

// Search walks the trie along `labels` (most significant first).
//
// An exact child is preferred; otherwise a wildcard child matches the label
// and ends the walk. The walk also ends at the first label without a match.
func (t *SuffixTrie) Search(labels []string) []Match {
	matches := make([]Match, 0, len(labels))
	cur := rootIdx

	for _, label := range labels {
		children := t.nodes[cur].children

		if next, ok := children[label]; ok {
			matches = append(matches, Match{Label: label, Terminal: t.nodes[next].terminal})
			cur = next

			continue
		}

		if wildcard, ok := children[Wildcard]; ok {
			matches = append(matches, Match{Label: label, Terminal: t.nodes[wildcard].terminal})
		}

		break
	}

	return matches
}

// Suffix searches `labels` and resolves the public suffix boundary.
// The result holds the suffix labels, most significant first.
func (t *SuffixTrie) Suffix(labels []string) []string {
	matches := Resolve(t.Search(labels))
	if len(matches) == 0 {
		return nil
	}

	res := make([]string, len(matches))
	for i, m := range matches {
		res[i] = m.Label
	}

	return res
}

// Resolve finds the suffix boundary of a search result: scanning from the
// most specific match back to the TLD, the first terminal match ends the
// suffix. Returns nil if no match is terminal.
func Resolve(matches []Match) []Match {
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Terminal {
			return matches[:i+1]
		}
	}

	return nil
}
