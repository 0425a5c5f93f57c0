package markup

import (
	"errors"
)

var (
	// ErrNoParseTree is returned when grammar produced nothing, for example
	// for empty input.
	ErrNoParseTree = errors.New("no parse tree produced")
	// ErrNoRootElement is returned when none of the top level nodes is an
	// element.
	ErrNoRootElement = errors.New("no root element found")
)

// Options control diagnostic content previews and logging.
type Options struct {
	// Elements without nested elements whose trimmed inner text is not
	// longer than this (in runes) are previewed verbatim.
	PreviewTextLimit int
	// Elements with more named syntax children than this are previewed as
	// "<start>...</end>".
	InnerContentChildren int
	// Log unknown element names at warn level.
	WarnCustomTags bool
}

// DefaultOptions returns options used when none are specified.
func DefaultOptions() Options {
	return Options{
		PreviewTextLimit:     32,
		InnerContentChildren: 2,
		WarnCustomTags:       true,
	}
}

// Option modifies parser options.
type Option func(*Options)

func WithPreviewTextLimit(n int) Option {
	return func(o *Options) { o.PreviewTextLimit = n }
}

func WithInnerContentChildren(n int) Option {
	return func(o *Options) { o.InnerContentChildren = n }
}

func WithWarnCustomTags(warn bool) Option {
	return func(o *Options) { o.WarnCustomTags = warn }
}

// WithOptions replaces all options at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}
