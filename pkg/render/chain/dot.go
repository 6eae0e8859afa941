// Package chain renders electrode layouts as anterior-posterior connection
// diagrams: each sagittal and parasagittal chain is drawn as a path of
// labeled nodes pinned at the computed coordinates. The DOT output can be
// rendered directly with Graphviz or through [RenderSVG].
package chain

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/Tato14/Ped-eeg-position/pkg/layout"
	"github.com/Tato14/Ped-eeg-position/pkg/montage"
	"github.com/Tato14/Ped-eeg-position/pkg/render"
)

// chains lists the anterior-to-posterior electrode runs of the montage:
// the midline, the two parasagittal chains and the two temporal chains.
var chains = [][]string{
	{montage.LabelFpz, montage.LabelFz, montage.LabelCz, montage.LabelPz, montage.LabelOz},
	{montage.LabelFp1, montage.LabelF3, montage.LabelC3, montage.LabelP3, montage.LabelO1},
	{montage.LabelFp2, montage.LabelF4, montage.LabelC4, montage.LabelP4, montage.LabelO2},
	{montage.LabelFp1, montage.LabelT7, montage.LabelO1},
	{montage.LabelFp2, montage.LabelT8, montage.LabelO2},
}

// Options configures chain diagram generation.
type Options struct {
	// Fiducials includes the anatomical landmarks as unconnected nodes.
	Fiducials bool
	// Coordinates appends the position in centimeters to each node label.
	Coordinates bool
}

// ToDOT converts a layout document to Graphviz DOT. Nodes are pinned at
// their computed coordinates (neato's pos=..! syntax), so the diagram is a
// true scale drawing rather than an auto-arranged graph. The resulting DOT
// string can be rendered with [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(d layout.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph montage {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12, fixedsize=true, width=0.6];\n")
	buf.WriteString("  edge [color=\"#666666\"];\n")
	buf.WriteString("\n")

	for _, e := range d.Electrodes {
		if e.Kind == layout.KindFiducial {
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%.3f,%.3f!\"];\n",
			e.Label, nodeLabel(e, opts), e.X, e.Y)
	}
	if opts.Fiducials {
		buf.WriteString("\n")
		for _, e := range d.Electrodes {
			if e.Kind != layout.KindFiducial {
				continue
			}
			fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%.3f,%.3f!\", shape=square, fillcolor=lightgrey];\n",
				e.Label, nodeLabel(e, opts), e.X, e.Y)
		}
	}

	buf.WriteString("\n")
	for _, chain := range chains {
		for i := 1; i < len(chain); i++ {
			fmt.Fprintf(&buf, "  %q -- %q;\n", chain[i-1], chain[i])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(e layout.Electrode, opts Options) string {
	if !opts.Coordinates {
		return e.Label
	}
	return fmt.Sprintf("%s\n(%.1f, %.1f)", e.Label, e.X, e.Y)
}

// RenderSVG renders a DOT chain diagram to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's svg element so the diagram scales
// cleanly when embedded (origin at zero, explicit pixel dimensions).
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT chain diagram as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT chain diagram as PNG via SVG conversion.
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
