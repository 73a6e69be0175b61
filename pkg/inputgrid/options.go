// Package inputgrid encodes engineering record collections into a
// single-sheet spreadsheet grid and decodes that grid back into records.
package inputgrid

import (
	"log/slog"

	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
)

// Options configures encoding and decoding.
type Options struct {
	// Layout describes the sheet. If nil, layout.Default() is used.
	Layout *layout.Layout
	// Logger receives progress and skipped-row messages.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
	// Lenient keeps decoding when a row fails coercion; the row is skipped
	// and reported in Result.Diagnostics.
	// If nil, decoding is strict and the first failure is returned.
	Lenient *bool
}

// DefaultOptions returns default codec options.
func DefaultOptions() Options {
	return Options{}
}

// ResolvedLayout returns a validated private copy of the layout.
func (o Options) ResolvedLayout() (*layout.Layout, error) {
	if o.Layout == nil {
		return layout.Default(), nil
	}
	l, err := o.Layout.Clone()
	if err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// ResolvedLogger returns the logger to use.
func (o Options) ResolvedLogger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// IsStrict returns whether a row coercion failure aborts decoding.
func (o Options) IsStrict() bool {
	return o.Lenient == nil || !*o.Lenient
}
