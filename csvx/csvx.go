/*
Package csvx provides CSV reading and writing helpers. Reading is
backed by the simdcsv parser, writing by encoding/csv.
*/
package csvx

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/matrixorigin/simdcsv"
	"github.com/pkg/errors"
)

// Reader reads records from a CSV stream in batches.
type Reader struct {
	reader    *simdcsv.Reader
	batchSize int
	buf       [][]string
	eof       bool
}

// NewReader creates a CSV reader over r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := newDefaultReaderOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &Reader{
		reader:    simdcsv.NewReaderWithOptions(r, o.comma, o.comment, o.lazyQuotes, o.trimLeadingSpace),
		batchSize: o.batchSize,
		buf:       make([][]string, o.batchSize),
	}
}

// ReadBatch reads up to the configured batch of records. It returns
// io.EOF after the last record has been read. The returned slice is
// reused by the next call; the records themselves are not.
func (r *Reader) ReadBatch(ctx context.Context) ([][]string, error) {
	if r.eof {
		return nil, io.EOF
	}

	content, n, err := r.reader.Read(r.batchSize, ctx, r.buf)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading csv batch")
	}
	r.buf = content

	if err == io.EOF || n < r.batchSize {
		r.eof = true
	}
	if n == 0 {
		return nil, io.EOF
	}

	return content[:n], nil
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll(ctx context.Context) ([][]string, error) {
	var records [][]string
	for {
		batch, err := r.ReadBatch(ctx)
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}
}

// Close releases the batch buffer. The reader must not be used after
// Close.
func (r *Reader) Close() {
	for i := range r.buf {
		r.buf[i] = nil
	}
	r.eof = true
}

// Writer writes records to a CSV stream.
type Writer struct {
	parser *csv.Writer
}

// NewWriter creates a CSV writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{parser: csv.NewWriter(w)}
}

// Write writes a single record. The record is buffered until Flush.
func (w *Writer) Write(record []string) error {
	if err := w.parser.Write(record); err != nil {
		return errors.Wrap(err, "writing csv record")
	}
	return nil
}

// WriteAll writes every record and flushes.
func (w *Writer) WriteAll(records [][]string) error {
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes buffered records to the underlying writer.
func (w *Writer) Flush() error {
	w.parser.Flush()
	return errors.Wrap(w.parser.Error(), "flushing csv writer")
}

// Split parses one CSV record from line.
func Split(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	fields, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "splitting csv line: %v", line)
	}
	return fields, nil
}

// Join encodes fields as a single CSV record without a line
// terminator.
func Join(fields []string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write(fields)
	w.Flush()
	return strings.TrimRight(sb.String(), "\r\n")
}
