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
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jumboframes/wordtrie/log"
)

var boms = [][]byte{
	{0xEF, 0xBB, 0xBF},
	{0xFF, 0xFE},
	{0xFE, 0xFF},
}

// Decode converts raw text to UTF-8. A byte order mark wins, valid UTF-8 is
// kept as is, anything else goes through charset detection. The detected
// charset name is returned alongside.
func Decode(raw []byte) ([]byte, string, error) {
	for _, bom := range boms {
		if bytes.HasPrefix(raw, bom) {
			decoded, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
			if err != nil {
				return nil, "", fmt.Errorf("decode bom: %w", err)
			}
			return decoded, "bom", nil
		}
	}
	if utf8.Valid(raw) {
		return raw, "utf-8", nil
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(raw)
	if err != nil {
		log.Warnf("charset detection err: %s, assuming windows-1252", err)
		result = &chardet.Result{Charset: "windows-1252"}
	}
	decoded, err := DecodeCharset(raw, result.Charset)
	if err != nil {
		return nil, result.Charset, err
	}
	return decoded, result.Charset, nil
}

// DecodeCharset converts raw from the named charset to UTF-8.
func DecodeCharset(raw []byte, charset string) ([]byte, error) {
	var enc encoding.Encoding
	switch name := strings.ToLower(charset); name {
	case "utf-8", "ascii", "us-ascii":
		enc = encoding.Nop
	case "utf-16le":
		enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16be":
		enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "gb-18030", "gb18030":
		enc = simplifiedchinese.GB18030
	default:
		var err error
		enc, err = htmlindex.Get(name)
		if err != nil {
			return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
		}
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", charset, err)
	}
	return decoded, nil
}
