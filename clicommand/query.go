/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package clicommand

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	wio "github.com/jumboframes/wordtrie/io"
	"github.com/jumboframes/wordtrie/trie"
)

const (
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// Querier answers trie queries, one line of output per queried item.
type Querier struct {
	trie   *trie.SyncTrie
	writer io.Writer
	format string
}

func NewQuerier(t *trie.SyncTrie, writer io.Writer, format string) *Querier {
	return &Querier{trie: t, writer: writer, format: format}
}

func (q *Querier) Lookup(words ...string) error {
	lines := make([]string, 0, len(words))
	for _, word := range words {
		lines = append(lines, fmt.Sprintf("%s\t%t", word, q.trie.Lookup(word)))
	}
	return wio.WriteLines(q.writer, lines...)
}

func (q *Querier) Count(words ...string) error {
	lines := make([]string, 0, len(words))
	for _, word := range words {
		count, err := q.trie.PeekOccurrence(word)
		if errors.Is(err, trie.ErrWordNotFound) {
			lines = append(lines, fmt.Sprintf("%s\tnot found", word))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s\t%s", word, humanize.Comma(int64(count))))
	}
	return wio.WriteLines(q.writer, lines...)
}

// Complete prints the best completion of each prefix. A missing prefix is
// reported inline, any other failure stops.
func (q *Querier) Complete(prefixes ...string) error {
	lines := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		word, err := q.trie.Autocomplete(prefix)
		switch {
		case errors.Is(err, trie.ErrPrefixNotFound), errors.Is(err, trie.ErrNoMatches):
			lines = append(lines, fmt.Sprintf("%s\t%s", prefix, err))
		case err != nil:
			return err
		default:
			lines = append(lines, fmt.Sprintf("%s\t%s", prefix, word))
		}
	}
	return wio.WriteLines(q.writer, lines...)
}

func (q *Querier) List() error {
	return wio.WriteLines(q.writer, q.trie.AlphabeticalList()...)
}

func (q *Querier) Top(k int) error {
	top, err := q.trie.KMostCommon(k)
	if err != nil {
		return err
	}
	return q.counts(top)
}

func (q *Querier) Completions(prefix string) error {
	completions, err := q.trie.Completions(prefix)
	if err != nil {
		return err
	}
	return q.counts(completions)
}

func (q *Querier) counts(counts []trie.WordCount) error {
	if q.format == FormatJSON {
		data, err := json.Marshal(counts)
		if err != nil {
			return err
		}
		return wio.WriteLines(q.writer, string(data))
	}
	lines := make([]string, 0, len(counts))
	for _, wc := range counts {
		lines = append(lines, wc.Word+"\t"+humanize.Comma(int64(wc.Count)))
	}
	return wio.WriteLines(q.writer, lines...)
}

func parseK(arg string) (int, error) {
	k, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: k must be a positive integer, got %q", trie.ErrInvalidArgument, arg)
	}
	return k, nil
}
