package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DiagnosticSink receives one line per classified record for auxiliary
// debug reports. Implementations must tolerate being called for every raw
// record; a nil sink disables diagnostics entirely.
type DiagnosticSink interface {
	Record(category Category, line string)
}

// categoryFiles maps diagnostic categories to their report file names.
// Names are kept byte-for-byte compatible with the historical reports,
// misspellings included ("not_subscritable", "not_pt"); consumers diff
// these files across runs, so do not correct them. The same applies to
// the line text produced by rejectionLine.
var categoryFiles = map[Category]string{
	CategoryLowCampus:         "low_campus.txt",
	CategoryMaybeBeta:         "maybe_beta.txt",
	CategoryNotSubscriptable:  "not_subscritable.txt",
	CategoryForbiddenKeyword:  "forbidden_keyword.txt",
	CategoryNotExcludedCampus: "not_pt.txt",
}

// FileSink writes each diagnostic category to its own text file in dir
type FileSink struct {
	files map[Category]*os.File
}

// NewFileSink opens (truncating) one report file per category in dir
func NewFileSink(dir string) (*FileSink, error) {
	sink := &FileSink{files: make(map[Category]*os.File, len(categoryFiles))}

	for category, name := range categoryFiles {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			sink.Close()
			return nil, fmt.Errorf("failed to create diagnostic file %s: %w", name, err)
		}
		sink.files[category] = f
	}

	return sink, nil
}

// Record writes one line to the category's report file
func (s *FileSink) Record(category Category, line string) {
	f, ok := s.files[category]
	if !ok {
		return
	}
	fmt.Fprintln(f, line)
}

// Close closes all report files
func (s *FileSink) Close() error {
	var errs error
	for _, f := range s.files {
		if err := f.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
