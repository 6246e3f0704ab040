/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package trie

import "sync"

// SyncTrie guards a Trie with a reader/writer lock, reads may run together
// while Insert is exclusive. Nodes never leak out of it.
type SyncTrie struct {
	mu   sync.RWMutex
	trie *Trie
}

func NewSyncTrie(words []string) *SyncTrie {
	return &SyncTrie{trie: New(words)}
}

func (st *SyncTrie) Insert(words ...string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, word := range words {
		st.trie.Insert(word)
	}
}

// Reset swaps the whole content for a trie built from words.
func (st *SyncTrie) Reset(words []string) {
	trie := New(words)
	st.mu.Lock()
	st.trie = trie
	st.mu.Unlock()
}

func (st *SyncTrie) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.trie.Len()
}

func (st *SyncTrie) Lookup(word string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.trie.Lookup(word)
}

func (st *SyncTrie) AlphabeticalList() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.trie.AlphabeticalList()
}

func (st *SyncTrie) PeekOccurrence(word string) (int, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.trie.PeekOccurrence(word)
}

func (st *SyncTrie) KMostCommon(k int) ([]WordCount, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.trie.KMostCommon(k)
}

func (st *SyncTrie) Autocomplete(prefix string) (string, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.trie.Autocomplete(prefix)
}

func (st *SyncTrie) Completions(prefix string) ([]WordCount, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.trie.Completions(prefix)
}
