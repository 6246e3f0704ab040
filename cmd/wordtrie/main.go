/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package main

import (
	"fmt"
	"os"

	"github.com/jumboframes/wordtrie/clicommand"
	"github.com/jumboframes/wordtrie/log"
)

func main() {
	app := clicommand.NewApp()
	err := app.Run(os.Args)
	log.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordtrie: %s\n", err)
		os.Exit(1)
	}
}
