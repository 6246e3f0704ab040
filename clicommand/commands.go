/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package clicommand

import (
	"fmt"

	"github.com/urfave/cli"
)

const Version = "0.1.0"

const appDescription = `Builds a word trie from one or more text corpora and queries it.

Example:

   $ wordtrie top --corpus speech.txt --k 3
   the	117
   and	109
   of	93

   $ wordtrie complete --corpus speech.txt spa
   spa	space`

// NewApp assembles the wordtrie command line application.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "wordtrie"
	app.Usage = "count, rank and autocomplete the words of a corpus"
	app.Description = appDescription
	app.Version = Version
	app.Flags = GlobalFlags
	app.Before = setupLogging
	app.Commands = Commands
	return app
}

var Commands = []cli.Command{
	LookupCommand,
	CountCommand,
	CompleteCommand,
	CompletionsCommand,
	ListCommand,
	TopCommand,
	ReplCommand,
}

// queryAction loads the corpus of c and hands a Querier to fn. An empty
// format is taken from the --format flag.
func queryAction(format string, fn func(c *cli.Context, q *Querier) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		st, err := loadTrie(corpusConfig(c))
		if err != nil {
			return exitError(err)
		}
		f := format
		if f == "" {
			f = c.String("format")
		}
		return exitError(fn(c, NewQuerier(st, c.App.Writer, f)))
	}
}

func requireArgs(c *cli.Context, what string) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one %s is required", what)
	}
	return nil
}

var formatFlag = cli.StringFlag{
	Name:   "format",
	Value:  FormatPlain,
	Usage:  "Output format: plain or json",
	EnvVar: "WORDTRIE_FORMAT",
}

func withFlags(flags ...cli.Flag) []cli.Flag {
	return append(append([]cli.Flag{}, CorpusFlags...), flags...)
}

var LookupCommand = cli.Command{
	Name:      "lookup",
	Usage:     "Reports whether each word is in the corpus",
	ArgsUsage: "WORD...",
	Flags:     withFlags(),
	Action: queryAction(FormatPlain, func(c *cli.Context, q *Querier) error {
		if err := requireArgs(c, "word"); err != nil {
			return err
		}
		return q.Lookup(c.Args()...)
	}),
}

var CountCommand = cli.Command{
	Name:      "count",
	Usage:     "Prints how often each word occurs",
	ArgsUsage: "WORD...",
	Flags:     withFlags(),
	Action: queryAction(FormatPlain, func(c *cli.Context, q *Querier) error {
		if err := requireArgs(c, "word"); err != nil {
			return err
		}
		return q.Count(c.Args()...)
	}),
}

var CompleteCommand = cli.Command{
	Name:      "complete",
	Usage:     "Prints the most frequent word starting with each prefix",
	ArgsUsage: "PREFIX...",
	Flags:     withFlags(),
	Action: queryAction(FormatPlain, func(c *cli.Context, q *Querier) error {
		if err := requireArgs(c, "prefix"); err != nil {
			return err
		}
		return q.Complete(c.Args()...)
	}),
}

var CompletionsCommand = cli.Command{
	Name:      "completions",
	Usage:     "Ranks every word starting with a prefix",
	ArgsUsage: "PREFIX",
	Flags:     withFlags(formatFlag),
	Action: queryAction("", func(c *cli.Context, q *Querier) error {
		return q.Completions(c.Args().First())
	}),
}

var ListCommand = cli.Command{
	Name:  "list",
	Usage: "Prints every distinct word in alphabetical order",
	Flags: withFlags(),
	Action: queryAction(FormatPlain, func(c *cli.Context, q *Querier) error {
		return q.List()
	}),
}

var TopCommand = cli.Command{
	Name:  "top",
	Usage: "Prints the k most frequent words",
	Flags: withFlags(
		cli.IntFlag{
			Name:   "k",
			Value:  10,
			Usage:  "Number of words to print",
			EnvVar: "WORDTRIE_K",
		},
		formatFlag,
	),
	Action: queryAction("", func(c *cli.Context, q *Querier) error {
		return q.Top(c.Int("k"))
	}),
}
