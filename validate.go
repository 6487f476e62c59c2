package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/mystic-pages/sitefix/internal/jscheck"
	"github.com/mystic-pages/sitefix/internal/site"
	"go.uber.org/zap"
)

// Excerpter prints the code around a position in a script.
type Excerpter interface {
	Excerpt(w io.Writer, code string, line, column int) error
}

// Validator reports inline scripts that don't parse.
type Validator struct {
	Stdout io.Writer
	Log    *zap.Logger
	Pool   *pagePool

	// Excerpts, if set, prints the offending code
	// after each syntax error.
	Excerpts Excerpter
}

// scriptError is a syntax error in one of a page's script blocks.
type scriptError struct {
	Script *jscheck.Script
	Err    *jscheck.SyntaxError
}

// PageLine is the line of the page on which the error occurs.
func (e *scriptError) PageLine() int {
	return e.Script.Line + e.Err.Line - 1
}

// Validate checks every inline script in pages
// and prints the syntax errors found.
// It returns errFindings if there were any.
func (v *Validator) Validate(ctx context.Context, pages []string) error {
	results := forEachPage(ctx, v.Pool, pages, v.validatePage)

	var (
		found, failed int
		excerptErrs   []error
	)
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(v.Stdout, "  ✗ Error processing %v: %v\n", res.Path, res.Err)
			continue
		}

		for _, serr := range res.Value {
			found++
			fmt.Fprintf(v.Stdout, "%v script block %d: ERROR - %v (line %d)\n",
				res.Path, serr.Script.Index, serr.Err.Message, serr.PageLine())
			if v.Excerpts != nil {
				if err := v.Excerpts.Excerpt(v.Stdout, serr.Script.Code, serr.Err.Line, serr.Err.Column); err != nil {
					excerptErrs = append(excerptErrs, fmt.Errorf("excerpt %v script block %d: %w", res.Path, serr.Script.Index, err))
				}
			}
		}
	}

	if found == 0 && failed == 0 {
		fmt.Fprintln(v.Stdout, "All files validated successfully!")
	}

	err := errors.Join(append(excerptErrs, failures(failed, len(pages)))...)
	if err == nil && found > 0 {
		err = errFindings
	}
	return errtrace.Wrap(err)
}

func (v *Validator) validatePage(ctx context.Context, path string) ([]*scriptError, error) {
	src, err := site.ReadPage(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var errs []*scriptError
	for _, s := range jscheck.Scripts(src) {
		if s.External || s.Blank() {
			continue
		}

		serr, err := jscheck.Syntax(ctx, s.Code)
		if err != nil {
			return nil, fmt.Errorf("script block %d: %w", s.Index, err)
		}
		if serr != nil {
			errs = append(errs, &scriptError{Script: s, Err: serr})
		}
	}

	v.Log.Debug("validated page", zap.String("page", path), zap.Int("errors", len(errs)))
	return errs, nil
}
