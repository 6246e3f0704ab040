/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package trie

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Joiner replaces whitespace inside a normalized word.
const Joiner = '-'

// Lower case-folds s the way words are stored. A Caser keeps state, so one is
// built per call.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Normalize lower-cases word, trims surrounding whitespace and joins what is
// left of internal whitespace with Joiner, one Joiner per whitespace rune.
func Normalize(word string) string {
	word = strings.TrimSpace(Lower(word))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return Joiner
		}
		return r
	}, word)
}
