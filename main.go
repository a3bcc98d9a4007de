package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"griddecode/fetch"
	"griddecode/viewer"
)

func main() {
	var (
		view       = flag.Bool("view", false, "Browse the decoded grid in an interactive viewer instead of printing it")
		outputFile = flag.String("o", "", "Write the decoded grid to a file (default: stdout)")
		help       = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <document-url>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decodes the character grid published in a table-formatted document\n")
		fmt.Fprintf(os.Stderr, "and prints it, top row first, as plain text.\n\n")
		fmt.Fprintf(os.Stderr, "The URL must be an https link to a document on %s.\n\n", fetch.DefaultHost)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s https://docs.google.com/document/d/e/.../pub\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -view https://docs.google.com/document/d/e/.../pub\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -o message.txt https://docs.google.com/document/d/e/.../pub\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one document URL is required\n\n")
		flag.Usage()
		os.Exit(2)
	}
	url := flag.Arg(0)

	d := newDecoder()

	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		d.out = f
	}

	if *view {
		g, err := d.decode(url)
		if err != nil {
			fail(err)
		}
		if g == nil {
			os.Exit(0)
		}
		if err := viewer.Show(g); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := d.displayGrid(url); err != nil {
		fail(err)
	}
}

// fail prints a message that names the failure class and exits. Users
// get told whether the URL, the document's reachability, or its content
// was the problem; they never see a stack trace.
func fail(err error) {
	var accessErr *fetch.AccessError
	switch {
	case errors.Is(err, fetch.ErrInvalidURL):
		fmt.Fprintf(os.Stderr, "Invalid URL: %v\n", err)
		fmt.Fprintf(os.Stderr, "Provide an https link to a document on %s.\n", fetch.DefaultHost)
	case errors.As(err, &accessErr):
		fmt.Fprintf(os.Stderr, "Error accessing the document: %v\n", err)
		fmt.Fprintf(os.Stderr, "Make sure the document is published and publicly accessible.\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
