/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package clicommand

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/jumboframes/wordtrie/trie"
)

const speech = `We choose to go to the Moon in this decade and do the other things,
not because they are easy, but because they are hard; because that goal will
serve to organize and measure the best of our energies and skills.`

func writeCorpus(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "speech.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	exited := 0
	exiter := cli.OsExiter
	cli.OsExiter = func(code int) { exited = code }
	defer func() { cli.OsExiter = exiter }()

	out := &bytes.Buffer{}
	app := NewApp()
	app.Writer = out
	app.ErrWriter = &bytes.Buffer{}
	_ = app.Run(append([]string{"wordtrie"}, args...))
	return out.String(), exited
}

func TestCommands(t *testing.T) {
	path := writeCorpus(t, speech)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "lookup",
			args: []string{"lookup", "--corpus", path, "Moon", "moo"},
			want: "Moon\ttrue\nmoo\tfalse\n",
		},
		{
			name: "count",
			args: []string{"count", "--corpus", path, "because", "the", "sun"},
			want: "because\t3\nthe\t3\nsun\tnot found\n",
		},
		{
			name: "complete",
			args: []string{"complete", "--corpus", path, "th", "be", "xyz"},
			want: "th\tthe\nbe\tbecause\nxyz\tprefix not found: \"xyz\"\n",
		},
		{
			name: "top",
			args: []string{"top", "--corpus", path, "--k", "4"},
			want: "and\t3\nbecause\t3\nthe\t3\nto\t3\n",
		},
		{
			name: "completions",
			args: []string{"completions", "--corpus", path, "th"},
			want: "the\t3\nthey\t2\nthat\t1\nthings\t1\nthis\t1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, code := run(t, tt.args...)
			assert.Equal(t, 0, code)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTopJSON(t *testing.T) {
	path := writeCorpus(t, "b a b c b a")
	got, code := run(t, "top", "--corpus", path, "--k", "2", "--format", "json")
	assert.Equal(t, 0, code)

	counts := []trie.WordCount{}
	require.NoError(t, json.Unmarshal([]byte(got), &counts))
	assert.Equal(t, []trie.WordCount{{Word: "b", Count: 3}, {Word: "a", Count: 2}}, counts)
}

func TestList(t *testing.T) {
	path := writeCorpus(t, "abc a ab A")
	got, code := run(t, "list", "--corpus", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "a\nab\nabc\n", got)
}

func TestCommandErrors(t *testing.T) {
	path := writeCorpus(t, speech)
	empty := writeCorpus(t, "")

	tests := []struct {
		name string
		args []string
	}{
		{"no corpus", []string{"list"}},
		{"missing corpus", []string{"list", "--corpus", filepath.Join(t.TempDir(), "nope")}},
		{"no words", []string{"lookup", "--corpus", path}},
		{"bad k", []string{"top", "--corpus", path, "--k", "0"}},
		{"empty trie", []string{"top", "--corpus", empty}},
		{"unknown prefix", []string{"completions", "--corpus", path, "zz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, code := run(t, tt.args...)
			assert.Equal(t, 1, code)
		})
	}
}

func TestSession(t *testing.T) {
	out := &bytes.Buffer{}
	st := trie.NewSyncTrie(strings.Fields("the the a an and"))
	session := NewSession(st, out, nil)

	input := strings.Join([]string{
		"lookup An",
		"",
		"count the zebra",
		"complete a",
		"top 2",
		"top x",
		"insert and and and",
		"complete",
		"bogus",
		"quit",
		"lookup never",
	}, "\n")
	require.NoError(t, session.Run(context.Background(), strings.NewReader(input)))

	want := strings.Join([]string{
		"An\ttrue",
		"the\t2",
		"zebra\tnot found",
		"a\ta",
		"the\t2",
		"a\t1",
		"error: invalid argument: k must be a positive integer, got \"x\"",
		"inserted 3",
		"\tand",
		"error: unknown command \"bogus\", try help",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("session diff (-want +got):\n%s", diff)
	}
}

func TestSessionEOF(t *testing.T) {
	out := &bytes.Buffer{}
	session := NewSession(trie.NewSyncTrie(nil), out, nil)
	require.NoError(t, session.Run(context.Background(), strings.NewReader("list\ntop 1")))
	assert.Equal(t, "error: empty trie\n", out.String())
}

func TestSessionCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader, writer, err := os.Pipe()
	require.NoError(t, err)
	defer reader.Close()
	defer writer.Close()

	session := NewSession(trie.NewSyncTrie(nil), &bytes.Buffer{}, nil)
	assert.NoError(t, session.Run(ctx, reader))
}

func TestSessionReload(t *testing.T) {
	st := trie.NewSyncTrie([]string{"old"})
	session := NewSession(st, &bytes.Buffer{}, func() ([]string, error) {
		return []string{"new", "new"}, nil
	})
	session.Notify(syscall.SIGHUP)
	assert.False(t, st.Lookup("old"))
	count, err := st.PeekOccurrence("new")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	failing := NewSession(st, &bytes.Buffer{}, func() ([]string, error) {
		return nil, os.ErrNotExist
	})
	failing.Notify(syscall.SIGHUP)
	assert.True(t, st.Lookup("new"))
}
