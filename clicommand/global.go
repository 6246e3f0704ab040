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

	"github.com/jumboframes/wordtrie/corpus"
	"github.com/jumboframes/wordtrie/log"
	"github.com/jumboframes/wordtrie/trie"
)

var GlobalFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "log-level",
		Value:  "warn",
		Usage:  "Drop log messages below this level: trace, debug, info, warn or error",
		EnvVar: "WORDTRIE_LOG_LEVEL",
	},
	cli.IntFlag{
		Name:   "verbosity",
		Value:  0,
		Usage:  "klog verbosity, trace messages need 5 and debug messages 4",
		EnvVar: "WORDTRIE_VERBOSITY",
	},
}

var CorpusFlags = []cli.Flag{
	cli.StringSliceFlag{
		Name:   "corpus",
		Usage:  "Text file (optionally gzipped) to build the trie from, \"-\" reads stdin. May be repeated",
		EnvVar: "WORDTRIE_CORPUS",
	},
	cli.StringFlag{
		Name:   "strip",
		Value:  corpus.DefaultStrip,
		Usage:  "Characters removed from the corpus before it is split into words",
		EnvVar: "WORDTRIE_STRIP",
	},
	cli.StringFlag{
		Name:   "strip-more",
		Usage:  "Characters removed in addition to --strip, e.g. digits",
		EnvVar: "WORDTRIE_STRIP_MORE",
	},
}

// CorpusConfig says where the words come from and how they are cleaned.
type CorpusConfig struct {
	Paths     []string
	Strip     string
	StripMore string
}

func corpusConfig(c *cli.Context) CorpusConfig {
	return CorpusConfig{
		Paths:     c.StringSlice("corpus"),
		Strip:     c.String("strip"),
		StripMore: c.String("strip-more"),
	}
}

func (cfg CorpusConfig) tokenizer() *corpus.Tokenizer {
	return corpus.NewTokenizer(
		corpus.OptionTokenizerStrip(cfg.Strip),
		corpus.OptionTokenizerStripMore(cfg.StripMore),
	)
}

// Load reads and tokenizes every configured corpus.
func (cfg CorpusConfig) Load() ([]string, error) {
	if len(cfg.Paths) == 0 {
		return nil, fmt.Errorf("no corpus given, use --corpus")
	}
	return corpus.LoadAll(cfg.Paths, cfg.tokenizer())
}

func loadTrie(cfg CorpusConfig) (*trie.SyncTrie, error) {
	words, err := cfg.Load()
	if err != nil {
		return nil, err
	}
	st := trie.NewSyncTrie(words)
	log.Infof("trie loaded, words: %d, distinct: %d", len(words), st.Len())
	return st, nil
}

func setupLogging(c *cli.Context) error {
	if err := log.InitKLog(c.Int("verbosity")); err != nil {
		return err
	}
	log.SetLevel(log.ParseLevel(c.String("log-level")))
	return nil
}

// exitError keeps the message and maps failures to exit status 1.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	return cli.NewExitError(err.Error(), 1)
}
