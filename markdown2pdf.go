// Package markdown2pdf is the library's top-level entry point: two
// functions, ParseIntoFile and ParseIntoBytes, wiring the lexer, style
// config, font resolver, and renderer together end to end.
package markdown2pdf

import (
	"github.com/theiskaa/markdown2pdf/config"
	"github.com/theiskaa/markdown2pdf/fonts"
	"github.com/theiskaa/markdown2pdf/lexer"
	"github.com/theiskaa/markdown2pdf/render"
	"github.com/theiskaa/markdown2pdf/style"
	"github.com/theiskaa/markdown2pdf/token"
)

// FontConfig holds optional font overrides layered onto the default
// font configuration.
type FontConfig struct {
	DefaultFont       string
	CodeFont          string
	DefaultFontSource *fonts.Source
	CodeFontSource    *fonts.Source
	EnableSubsetting  *bool
}

func (c FontConfig) resolve() fonts.Config {
	out := fonts.DefaultConfig()
	if c.DefaultFont != "" {
		out.DefaultFont = c.DefaultFont
	}
	if c.CodeFont != "" {
		out.CodeFont = c.CodeFont
	}
	if c.DefaultFontSource != nil {
		out.DefaultFontSource = c.DefaultFontSource
	}
	if c.CodeFontSource != nil {
		out.CodeFontSource = c.CodeFontSource
	}
	if c.EnableSubsetting != nil {
		out.EnableSubsetting = *c.EnableSubsetting
	}
	return out
}

// ParseIntoFile parses markdown and writes the rendered PDF to path.
func ParseIntoFile(markdown, path string, configSource config.Source, fontConfig FontConfig) error {
	tokens, st, fc, err := prepare(markdown, configSource, fontConfig)
	if err != nil {
		return err
	}
	renderer := render.New(st, fonts.NewResolver(), fc)
	return renderer.RenderToFile(tokens, path)
}

// ParseIntoBytes parses markdown and returns the rendered PDF bytes.
func ParseIntoBytes(markdown string, configSource config.Source, fontConfig FontConfig) ([]byte, error) {
	tokens, st, fc, err := prepare(markdown, configSource, fontConfig)
	if err != nil {
		return nil, err
	}
	renderer := render.New(st, fonts.NewResolver(), fc)
	return renderer.RenderToBytes(tokens)
}

// prepare runs the shared first half of both entry points: lexing and
// style-config loading. Both are pure/synchronous, so there is nothing
// to cancel or suspend.
func prepare(markdown string, configSource config.Source, fontConfig FontConfig) ([]token.Token, style.Record, fonts.Config, error) {
	tokens, err := lexer.Parse(markdown)
	if err != nil {
		return nil, style.Record{}, fonts.Config{}, err
	}

	st, err := config.Load(configSource)
	if err != nil {
		return nil, style.Record{}, fonts.Config{}, err
	}

	return tokens, st, fontConfig.resolve(), nil
}
