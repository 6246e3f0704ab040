/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package corpus

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"

	"github.com/jumboframes/wordtrie/log"
)

// Stdin is the path naming standard input.
const Stdin = "-"

// Read decodes and tokenizes a whole corpus held by reader. Gzip streams are
// recognised by their magic bytes.
func Read(reader io.Reader, tk *Tokenizer) ([]string, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(raw, []byte{0x1f, 0x8b}) {
		gz, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		if raw, err = io.ReadAll(gz); err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
	}
	text, charset, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	log.Debugf("corpus decoded, size: %s, charset: %s", humanize.Bytes(uint64(len(raw))), charset)
	return tk.Tokenize(bytes.NewReader(text))
}

// Load reads the corpus at path, Stdin meaning standard input.
func Load(path string, tk *Tokenizer) ([]string, error) {
	if path == Stdin {
		return Read(os.Stdin, tk)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words, err := Read(file, tk)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Debugf("corpus %s loaded, words: %s", path, humanize.Comma(int64(len(words))))
	return words, nil
}

// LoadAll concatenates the words of every path in order.
func LoadAll(paths []string, tk *Tokenizer) ([]string, error) {
	words := []string{}
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		loaded, err := Load(path, tk)
		if err != nil {
			return nil, err
		}
		words = append(words, loaded...)
	}
	return words, nil
}
