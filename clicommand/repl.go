/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package clicommand

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/urfave/cli"

	wio "github.com/jumboframes/wordtrie/io"
	"github.com/jumboframes/wordtrie/log"
	"github.com/jumboframes/wordtrie/sigaction"
	"github.com/jumboframes/wordtrie/trie"
)

const replHelp = `commands:
  lookup WORD...        is the word in the corpus
  count WORD...         occurrences of each word
  complete PREFIX...    most frequent completion of each prefix
  completions PREFIX    every completion, ranked
  top [K]               the K (default 10) most frequent words
  list                  every word, alphabetically
  insert WORD...        add words to the trie
  help                  this text
  quit                  leave`

var errQuit = errors.New("quit")

// Session runs queries read line by line against a live trie.
type Session struct {
	trie    *trie.SyncTrie
	querier *Querier
	writer  io.Writer
	reload  func() ([]string, error)
}

// NewSession answers on writer, reload rebuilds the trie on SIGHUP and may be nil.
func NewSession(st *trie.SyncTrie, writer io.Writer, reload func() ([]string, error)) *Session {
	return &Session{
		trie:    st,
		querier: NewQuerier(st, writer, FormatPlain),
		writer:  writer,
		reload:  reload,
	}
}

// Notify reloads the corpus, a failed reload keeps the current trie.
func (s *Session) Notify(sg os.Signal) {
	if s.reload == nil {
		return
	}
	words, err := s.reload()
	if err != nil {
		log.Errorf("reload on %s err: %s, keeping current trie", sg, err)
		return
	}
	s.trie.Reset(words)
	log.Infof("reloaded on %s, distinct words: %d", sg, s.trie.Len())
}

// Exec runs one command line. Query errors are printed and do not end the
// session, errQuit does.
func (s *Session) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return errQuit
	case "help":
		err = wio.WriteLines(s.writer, replHelp)
	case "lookup":
		err = s.querier.Lookup(args...)
	case "count":
		err = s.querier.Count(args...)
	case "complete":
		if len(args) == 0 {
			// a bare complete asks for the most common word overall
			args = []string{""}
		}
		err = s.querier.Complete(args...)
	case "completions":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		err = s.querier.Completions(prefix)
	case "top":
		k := 10
		if len(args) > 0 {
			k, err = parseK(args[0])
		}
		if err == nil {
			err = s.querier.Top(k)
		}
	case "list":
		err = s.querier.List()
	case "insert":
		s.trie.Insert(args...)
		err = wio.Writef(s.writer, "inserted %d", len(args))
	default:
		err = fmt.Errorf("unknown command %q, try help", cmd)
	}
	if err != nil {
		return wio.Writef(s.writer, "error: %s", err)
	}
	return nil
}

// Run executes lines from reader until EOF, quit or ctx is done.
func (s *Session) Run(ctx context.Context, reader io.Reader) error {
	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errs <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug("session canceled")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errs:
					return err
				default:
					return nil
				}
			}
			if err := s.Exec(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

var ReplCommand = cli.Command{
	Name:        "repl",
	Usage:       "Loads the corpus and answers queries read from stdin",
	Description: replHelp + "\n\nSIGHUP reloads the corpus, SIGINT or SIGTERM ends the session.",
	Flags:       withFlags(),
	Action:      replAction,
}

func replAction(c *cli.Context) error {
	cfg := corpusConfig(c)
	for _, path := range cfg.Paths {
		if path == "-" {
			return exitError(fmt.Errorf("repl reads commands from stdin, the corpus must be a file"))
		}
	}
	st, err := loadTrie(cfg)
	if err != nil {
		return exitError(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session := NewSession(st, c.App.Writer, cfg.Load)
	sig := sigaction.NewSignal(sigaction.OptionSignalCancel(cancel))
	sig.Add(syscall.SIGHUP, session)
	go sig.Wait(ctx)

	return exitError(session.Run(ctx, os.Stdin))
}
