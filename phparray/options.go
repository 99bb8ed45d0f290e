package phparray

// Indent presets. Any string is accepted as an indent.
const (
	IndentTwoSpaces  = "  "
	IndentFourSpaces = "    "
	IndentTab        = "\t"
	IndentNone       = ""
)

// Quote presets. Any string is accepted as a quote; it is not validated.
const (
	QuoteSimple = "'"
	QuoteDouble = `"`
)

// Options configures the renderer.
type Options struct {
	// Pretty requests multi-line containers. Output is multi-line either way;
	// there is no single-line mode.
	Pretty bool

	// Indent is written once per nesting level (default: four spaces)
	Indent string

	// Quote delimits text values and mapping keys (default: ")
	Quote string

	// TrailingComma adds a separator after the last element of a container
	TrailingComma bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Pretty:        true,
		Indent:        IndentFourSpaces,
		Quote:         QuoteDouble,
		TrailingComma: false,
	}
}

// Option overrides a single field of Options.
type Option func(*Options)

// WithPretty sets Options.Pretty.
func WithPretty(pretty bool) Option {
	return func(o *Options) {
		o.Pretty = pretty
	}
}

// WithIndent sets the per-level indent string.
func WithIndent(indent string) Option {
	return func(o *Options) {
		o.Indent = indent
	}
}

// WithQuote sets the quote string.
func WithQuote(quote string) Option {
	return func(o *Options) {
		o.Quote = quote
	}
}

// WithTrailingComma sets Options.TrailingComma.
func WithTrailingComma(trailing bool) Option {
	return func(o *Options) {
		o.TrailingComma = trailing
	}
}

// NewOptions returns DefaultOptions with opts applied in order.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
