/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package io

import (
	"fmt"
	"io"
	"strings"
)

// WriteAll writes all data to writer, retrying short writes.
func WriteAll(data []byte, writer io.Writer) (int, error) {
	length := len(data)
	pos := 0
	for pos < length {
		m, err := writer.Write(data[pos:length])
		pos += m
		if err != nil {
			return pos, err
		}
		if m == 0 {
			return pos, io.ErrShortWrite
		}
	}
	return length, nil
}

// WriteLines writes each line followed by a newline in one WriteAll.
func WriteLines(writer io.Writer, lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := WriteAll([]byte(strings.Join(lines, "\n")+"\n"), writer)
	return err
}

// Writef formats a single line.
func Writef(writer io.Writer, format string, v ...interface{}) error {
	return WriteLines(writer, fmt.Sprintf(format, v...))
}
