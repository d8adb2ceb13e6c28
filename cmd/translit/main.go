// Command translit converts a text file from Alberto Elli's Latin
// transliteration scheme to Unicode Coptic and prints the result.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rillian/hilaria/translit"
)

var errUsage = errors.New("usage: translit <transliterated.txt>")

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	data, err := os.ReadFile(args[1]) // #nosec G304 -- path is the user's input argument
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	fmt.Println(translit.ConvertText(string(data)))
	return nil
}
