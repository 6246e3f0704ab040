/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package trie

import "sort"

// Node is one vertex of the trie. Children are owned by their parent, there
// is no way back up.
type Node struct {
	char       rune
	terminal   bool
	occurrence int
	children   map[rune]*Node
}

func newNode(char rune) *Node {
	return &Node{char: char}
}

func (node *Node) Char() rune {
	return node.char
}

// Terminal reports whether an inserted word ends at this node.
func (node *Node) Terminal() bool {
	return node.terminal
}

// Occurrence is the number of insertions ending here, zero unless Terminal.
func (node *Node) Occurrence() int {
	if !node.terminal {
		return 0
	}
	return node.occurrence
}

// Child returns the direct child for char, nil if absent.
func (node *Node) Child(char rune) *Node {
	if node.children == nil {
		return nil
	}
	return node.children[char]
}

// SortedChildren returns a fresh slice of the children ordered by character.
func (node *Node) SortedChildren() []*Node {
	children := make([]*Node, 0, len(node.children))
	for _, child := range node.children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].char < children[j].char
	})
	return children
}

func (node *Node) addChild(char rune) *Node {
	if node.children == nil {
		node.children = make(map[rune]*Node)
	}
	child := newNode(char)
	node.children[char] = child
	return child
}

type frame struct {
	node  *Node
	depth int
}

// collect lists every word at or under node in alphabetical order, prefix
// being the word spelled by the path down to node. An explicit stack and one
// shared path buffer keep deep tries off the goroutine stack.
func (node *Node) collect(prefix string) []WordCount {
	words := []WordCount{}
	path := []rune(prefix)
	stack := []frame{{node: node, depth: len(path)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node != node {
			path = append(path[:top.depth-1], top.node.char)
		}
		if top.node.terminal {
			words = append(words, WordCount{Word: string(path), Count: top.node.occurrence})
		}
		children := top.node.SortedChildren()
		// reversed so the smallest character is popped first
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i], depth: top.depth + 1})
		}
	}
	return words
}
