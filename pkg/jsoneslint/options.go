package jsoneslint

import "fmt"

// Options configures ParseForESLint. JSONSyntax selects the dialect
// capability record; an empty or unrecognized value falls back to the
// unrestricted default dialect.
type Options struct {
	// JSONSyntax is one of "JSON", "JSONC", "JSON5" (case-insensitive),
	// or "" for the unrestricted default.
	JSONSyntax string
}

// NewOptions returns Options selecting the unrestricted default dialect.
func NewOptions() *Options {
	return &Options{}
}

// Builder provides a fluent API for constructing Options.
type Builder struct {
	opts *Options
}

// NewBuilder creates a Builder seeded with NewOptions.
func NewBuilder() *Builder {
	return &Builder{opts: NewOptions()}
}

// WithJSONSyntax sets the dialect tag.
func (b *Builder) WithJSONSyntax(syntax string) *Builder {
	b.opts.JSONSyntax = syntax
	return b
}

// Build returns the constructed Options.
func (b *Builder) Build() (*Options, error) {
	return b.opts, nil
}

// MustBuild returns the constructed Options. Kept alongside Build for
// parity with the usual builder shape, even though Build here never
// fails.
func (b *Builder) MustBuild() *Options {
	opts, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build Options: %v", err))
	}
	return opts
}
