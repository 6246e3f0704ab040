/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package trie

import (
	"fmt"
	"sort"

	"github.com/jumboframes/wordtrie/log"
)

// WordCount pairs a word with the number of times it was inserted.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Trie indexes words by character and counts how often each was inserted.
// It is not safe for concurrent use, see SyncTrie.
type Trie struct {
	root  *Node
	words int
	nodes int
}

// New builds a trie holding words, each normalized before insertion.
func New(words []string) *Trie {
	trie := &Trie{root: newNode(0)}
	for _, word := range words {
		trie.Insert(word)
	}
	log.Debugf("trie built from %d words, distinct: %d, nodes: %d",
		len(words), trie.words, trie.nodes)
	return trie
}

// Root is the characterless node every word hangs from.
func (trie *Trie) Root() *Node {
	return trie.root
}

// Len is the number of distinct words.
func (trie *Trie) Len() int {
	return trie.words
}

// Nodes is the number of nodes below the root.
func (trie *Trie) Nodes() int {
	return trie.nodes
}

// Insert normalizes word and counts one more occurrence of it. A word that
// normalizes to nothing is ignored.
func (trie *Trie) Insert(word string) {
	word = Normalize(word)
	if word == "" {
		log.Trace("empty word ignored")
		return
	}
	node := trie.root
	for _, char := range word {
		child := node.Child(char)
		if child == nil {
			child = node.addChild(char)
			trie.nodes++
		}
		node = child
	}
	if !node.terminal {
		node.terminal = true
		trie.words++
	}
	node.occurrence++
}

func (trie *Trie) descend(path string) *Node {
	node := trie.root
	for _, char := range path {
		node = node.Child(char)
		if node == nil {
			return nil
		}
	}
	return node
}

// Lookup reports whether word, once normalized, was ever inserted.
func (trie *Trie) Lookup(word string) bool {
	word = Normalize(word)
	if word == "" {
		return false
	}
	node := trie.descend(word)
	return node != nil && node.terminal
}

// AlphabeticalList returns every distinct word once, in ascending order.
func (trie *Trie) AlphabeticalList() []string {
	counts := trie.root.collect("")
	words := make([]string, 0, len(counts))
	for _, wc := range counts {
		words = append(words, wc.Word)
	}
	return words
}

// PeekOccurrence returns how often word was inserted. The word is normalized
// like Lookup does.
func (trie *Trie) PeekOccurrence(word string) (int, error) {
	normalized := Normalize(word)
	if normalized != "" {
		node := trie.descend(normalized)
		if node != nil && node.terminal {
			return node.occurrence, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrWordNotFound, word)
}

// rank orders by count descending, equal counts keep their incoming order.
func rank(words []WordCount) {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Count > words[j].Count
	})
}

// KMostCommon returns the k most inserted words, most frequent first, ties in
// alphabetical order. Asking for more words than the trie holds returns them
// all.
func (trie *Trie) KMostCommon(k int) ([]WordCount, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be a positive integer, got %d", ErrInvalidArgument, k)
	}
	words := trie.root.collect("")
	if len(words) == 0 {
		return nil, ErrEmptyTrie
	}
	rank(words)
	if k > len(words) {
		log.Infof("trie has %d < %d distinct words, returning all of them", len(words), k)
		return words, nil
	}
	return words[:k], nil
}

// MostCommonWithPrefix returns the most inserted word at or below node, prefix
// being the word spelled by the path to node.
func (trie *Trie) MostCommonWithPrefix(node *Node, prefix string) (string, error) {
	words, err := trie.completions(node, prefix)
	if err != nil {
		return "", err
	}
	return words[0].Word, nil
}

func (trie *Trie) completions(node *Node, prefix string) ([]WordCount, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoMatches, prefix)
	}
	words := node.collect(prefix)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatches, prefix)
	}
	rank(words)
	return words, nil
}

// Walk returns the node reached by the lower-cased prefix, nil if the path
// does not exist. The empty prefix walks to the root.
func (trie *Trie) Walk(prefix string) *Node {
	return trie.descend(Lower(prefix))
}

// Autocomplete returns the most inserted word starting with prefix, prefix
// itself included. Only case is normalized.
func (trie *Trie) Autocomplete(prefix string) (string, error) {
	prefix = Lower(prefix)
	node := trie.descend(prefix)
	if node == nil {
		return "", fmt.Errorf("%w: %q", ErrPrefixNotFound, prefix)
	}
	return trie.MostCommonWithPrefix(node, prefix)
}

// Completions ranks every word starting with prefix like KMostCommon does.
func (trie *Trie) Completions(prefix string) ([]WordCount, error) {
	prefix = Lower(prefix)
	node := trie.descend(prefix)
	if node == nil {
		return nil, fmt.Errorf("%w: %q", ErrPrefixNotFound, prefix)
	}
	return trie.completions(node, prefix)
}
