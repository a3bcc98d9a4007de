package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"griddecode/fetch"
	"griddecode/grid"
	"griddecode/table"
)

// decoder runs the validate → fetch → parse → render pipeline.
// It holds the injectable collaborators so tests can point it at a
// local server and capture its output; newDecoder wires the real ones.
type decoder struct {
	host    string // expected document host
	fetcher *fetch.Fetcher
	out     io.Writer // rendered grid
	diag    io.Writer // skipped-row and no-data messages
}

// newDecoder creates a decoder with production defaults.
func newDecoder() *decoder {
	return &decoder{
		host:    fetch.DefaultHost,
		fetcher: fetch.NewFetcher(nil),
		out:     os.Stdout,
		diag:    os.Stderr,
	}
}

// decode fetches and parses the document and builds the grid.
//
// Validation and access failures are returned as errors and nothing is
// produced. A document with no table, or with no valid rows, is not a
// failure of the call: the condition is reported on the diagnostic
// stream and decode returns (nil, nil) so the process can exit cleanly
// without printing a grid.
func (d *decoder) decode(url string) (*grid.Grid, error) {
	if err := fetch.ValidateURL(url, d.host); err != nil {
		return nil, err
	}

	markup, err := d.fetcher.Fetch(url)
	if err != nil {
		return nil, err
	}

	parser := &table.Parser{Diag: d.diag}
	cells, err := parser.Parse(markup)
	if errors.Is(err, table.ErrNoTable) {
		fmt.Fprintln(d.diag, "No table found in the document.")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	g, err := grid.Build(cells)
	if errors.Is(err, grid.ErrNoData) {
		fmt.Fprintln(d.diag, "No data to display.")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// displayGrid runs the full pipeline and writes the rendered grid, top
// row first, to the decoder's output. The printed grid is the whole
// contract; there is no return value beyond the error.
func (d *decoder) displayGrid(url string) error {
	g, err := d.decode(url)
	if err != nil || g == nil {
		return err
	}
	_, err = g.WriteTo(d.out)
	return err
}
