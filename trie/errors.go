/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package trie

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyTrie       = errors.New("empty trie")
	ErrNoMatches       = errors.New("no matches")
	ErrPrefixNotFound  = errors.New("prefix not found")
	ErrWordNotFound    = errors.New("word not found")
)
