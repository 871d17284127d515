package csvx

// Option is a reader configuration option.
type Option interface {
	apply(*readerOptions)
}

type readerOptions struct {
	comma            rune
	comment          rune
	lazyQuotes       bool
	trimLeadingSpace bool
	batchSize        int
}

func newDefaultReaderOptions() readerOptions {
	return readerOptions{
		comma:     ',',
		batchSize: 1024,
	}
}

// WithComma option configures the field separator.
//
// The default is a comma.
func WithComma(comma rune) Option {
	return funcOption(func(opts *readerOptions) {
		opts.comma = comma
	})
}

// WithComment option configures a comment character. Lines beginning
// with it are skipped.
//
// The zero value disables comments.
func WithComment(comment rune) Option {
	return funcOption(func(opts *readerOptions) {
		opts.comment = comment
	})
}

// WithLazyQuotes option allows a quote to appear in an unquoted field
// and a non-doubled quote in a quoted field.
func WithLazyQuotes() Option {
	return funcOption(func(opts *readerOptions) {
		opts.lazyQuotes = true
	})
}

// WithTrimLeadingSpace option ignores leading white space in a field.
func WithTrimLeadingSpace() Option {
	return funcOption(func(opts *readerOptions) {
		opts.trimLeadingSpace = true
	})
}

// WithBatchSize option configures how many records a single ReadBatch
// call returns at most.
//
// The zero value configures batches of 1024 records.
func WithBatchSize(n int) Option {
	return funcOption(func(opts *readerOptions) {
		if n > 0 {
			opts.batchSize = n
		}
	})
}

type funcOption func(*readerOptions)

func (o funcOption) apply(opts *readerOptions) {
	o(opts)
}
