/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package corpus

import (
	"bufio"
	"io"
	"strings"
)

// DefaultStrip is the punctuation removed from raw text before it is split
// into words. Hyphens and apostrophes survive so compounds stay whole.
const DefaultStrip = ";,.?!_[]:“”\"–"

const maxToken = 1024 * 1024

type OptionTokenizer func(tk *Tokenizer)

// OptionTokenizerStrip replaces the set of characters dropped from text.
func OptionTokenizerStrip(chars string) OptionTokenizer {
	return func(tk *Tokenizer) {
		tk.strip = runeSet(chars)
	}
}

// OptionTokenizerStripMore adds characters to the dropped set.
func OptionTokenizerStripMore(chars string) OptionTokenizer {
	return func(tk *Tokenizer) {
		for _, char := range chars {
			tk.strip[char] = struct{}{}
		}
	}
}

// Tokenizer turns raw text into the word sequence a trie is built from.
type Tokenizer struct {
	strip map[rune]struct{}
}

func NewTokenizer(options ...OptionTokenizer) *Tokenizer {
	tk := &Tokenizer{
		strip: runeSet(DefaultStrip),
	}
	for _, option := range options {
		option(tk)
	}
	return tk
}

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, char := range chars {
		set[char] = struct{}{}
	}
	return set
}

// Clean drops every stripped character from s.
func (tk *Tokenizer) Clean(s string) string {
	return strings.Map(func(r rune) rune {
		if _, ok := tk.strip[r]; ok {
			return -1
		}
		return r
	}, s)
}

// Tokenize splits reader on whitespace, cleans each token and keeps the non
// empty ones in order.
func (tk *Tokenizer) Tokenize(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxToken)
	scanner.Split(bufio.ScanWords)

	words := []string{}
	for scanner.Scan() {
		word := tk.Clean(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
