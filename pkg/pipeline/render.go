package pipeline

import (
	"github.com/Tato14/Ped-eeg-position/pkg/errors"
	"github.com/Tato14/Ped-eeg-position/pkg/layout"
	"github.com/Tato14/Ped-eeg-position/pkg/render/chain"
	"github.com/Tato14/Ped-eeg-position/pkg/render/scalp"
	"github.com/Tato14/Ped-eeg-position/pkg/render/scalp/styles"
)

// renderDocument produces every requested format for the document.
// Options must already be validated.
func renderDocument(doc layout.Document, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(doc, format, opts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(doc layout.Document, format string, opts Options) ([]byte, error) {
	// JSON is viz-independent: it is the document itself.
	if format == FormatJSON {
		return layout.Marshal(doc)
	}
	if opts.IsChain() {
		return renderChain(doc, format, opts)
	}
	return renderScalp(doc, format, opts)
}

func renderScalp(doc layout.Document, format string, opts Options) ([]byte, error) {
	svgOpts := scalpOptions(opts)
	switch format {
	case FormatSVG:
		return scalp.RenderSVG(doc, svgOpts...), nil
	case FormatPNG:
		return scalp.RenderPNG(doc, scalp.WithPNGSVGOptions(svgOpts...), scalp.WithScale(opts.Scale))
	case FormatPDF:
		return scalp.RenderPDF(doc, scalp.WithPDFSVGOptions(svgOpts...))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scalp format %q", format)
}

func renderChain(doc layout.Document, format string, opts Options) ([]byte, error) {
	dot := chain.ToDOT(doc, chain.Options{
		Fiducials:   opts.Fiducials,
		Coordinates: opts.Coordinates,
	})
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return chain.RenderSVG(dot)
	case FormatPNG:
		return chain.RenderPNG(dot, opts.Scale)
	case FormatPDF:
		return chain.RenderPDF(dot)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported chain format %q", format)
}

// scalpOptions translates pipeline options into scalp renderer options.
func scalpOptions(opts Options) []scalp.SVGOption {
	svgOpts := []scalp.SVGOption{scalp.WithWidth(opts.Width)}
	if opts.Style == StylePrint {
		svgOpts = append(svgOpts, scalp.WithStyle(styles.Print{}))
	}
	if opts.Grid {
		svgOpts = append(svgOpts, scalp.WithGrid())
	}
	if opts.NoLabels {
		svgOpts = append(svgOpts, scalp.WithoutLabels())
	}
	return svgOpts
}
