// Command quizit is a small authoring/debugging tool over the card
// package: it shows how raw front/back text decodes and how an answer
// would grade, without touching any server or store.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/quizit-app/quizit-core/internal/card"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "decode-front":
		fs := flag.NewFlagSet("decode-front", flag.ExitOnError)
		text := fs.String("text", "", "raw front text (or -file)")
		file := fs.String("file", "", "read raw front text from file")
		_ = fs.Parse(os.Args[2:])
		raw := mustInput(*text, *file)
		printJSON(card.DecodeFront(raw))

	case "decode-back":
		fs := flag.NewFlagSet("decode-back", flag.ExitOnError)
		text := fs.String("text", "", "raw back text (or -file)")
		file := fs.String("file", "", "read raw back text from file")
		noAnswer := fs.Bool("no-answer", false, "treat free text as explanation only")
		_ = fs.Parse(os.Args[2:])
		raw := mustInput(*text, *file)
		printJSON(card.DecodeBack(raw, *noAnswer))

	case "grade":
		fs := flag.NewFlagSet("grade", flag.ExitOnError)
		frontText := fs.String("front", "", "raw front text")
		backText := fs.String("back", "", "raw back text")
		answer := fs.String("answer", "", "submitted answer, comma-separated per blank/selection")
		_ = fs.Parse(os.Args[2:])

		front := card.DecodeFront(*frontText)
		back := card.DecodeBack(*backText, false)
		parts := []string{}
		if *answer != "" {
			parts = strings.Split(*answer, ",")
		}
		printJSON(map[string]any{
			"kind":    front.Kind,
			"correct": card.Grade(front, back, parts),
		})

	default:
		usage()
		os.Exit(2)
	}
}

func mustInput(text, file string) string {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return string(b)
	}
	return text
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: quizit <decode-front|decode-back|grade> [flags]")
}
