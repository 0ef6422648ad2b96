// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene reads YAML scene documents for the aafill command and
// renders them with the analytic filler.
//
// A document looks like:
//
//	width: 64
//	height: 64
//	background: "#ffffff"
//	options:
//	  force_rle: false
//	  fallback: true
//	shapes:
//	  - name: wedge
//	    path: "M 8 8 L 56 12 L 20 56 Z"
//	    color: "#c03020"
//	    transform: [1, 0, 0, 1, 0, 0]
//	    clip: [0, 0, 64, 32]
package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/aafill"
)

// Options are the fill options shared by all shapes of a document.
type Options struct {
	ForceRLE      bool `yaml:"force_rle"`
	Fallback      bool `yaml:"fallback"`
	MaskMaxWidth  int  `yaml:"mask_max_width"`
	MaskMaxArea   int  `yaml:"mask_max_area"`
	RowsPreserved int  `yaml:"rows_preserved"`
}

// LogConfig selects where the command writes its log.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Shape is one filled path.
type Shape struct {
	Name      string    `yaml:"name"`
	Path      string    `yaml:"path"`
	Color     string    `yaml:"color"`
	FillRule  string    `yaml:"fill_rule"`
	Inverse   bool      `yaml:"inverse"`
	Transform []float64 `yaml:"transform"`
	Clip      []int     `yaml:"clip"`
}

// Document is a complete scene.
type Document struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Background string    `yaml:"background"`
	Options    Options   `yaml:"options"`
	Log        LogConfig `yaml:"log"`
	Shapes     []Shape   `yaml:"shapes"`
}

// Defaults returns an empty 256x256 white scene with the fallback enabled.
func Defaults() Document {
	return Document{
		Width:      256,
		Height:     256,
		Background: "#ffffff",
		Options:    Options{Fallback: true},
		Log:        LogConfig{Level: "info"},
	}
}

// Parse decodes a YAML document over Defaults and validates it.
func Parse(data []byte) (*Document, error) {
	doc := Defaults()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	doc.Log.Level = strings.ToLower(strings.TrimSpace(doc.Log.Level))
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return Parse(data)
}

// Validate checks the document without rendering it.
func (d *Document) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("scene: invalid size %dx%d", d.Width, d.Height)
	}
	if _, err := ParseColor(d.Background); err != nil {
		return fmt.Errorf("scene: background: %w", err)
	}
	var errs []error
	for i := range d.Shapes {
		if _, err := d.Shapes[i].compile(); err != nil {
			errs = append(errs, fmt.Errorf("shape %d (%s): %w", i, d.Shapes[i].Name, err))
		}
	}
	return errors.Join(errs...)
}

// Bounds returns the canvas rectangle.
func (d *Document) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width, d.Height)
}

// FillOptions returns the document-wide fill options.
func (o Options) FillOptions() []aafill.FillOption {
	opts := []aafill.FillOption{
		aafill.WithForceRLE(o.ForceRLE),
		aafill.WithFallback(o.Fallback),
		aafill.WithMaskLimits(o.MaskMaxWidth, o.MaskMaxArea),
	}
	if o.RowsPreserved > 0 {
		opts = append(opts, aafill.WithRowsPreserved(o.RowsPreserved))
	}
	return opts
}

// compiled is a shape ready to fill.
type compiled struct {
	path  *aafill.Path
	color color.NRGBA
	opts  []aafill.FillOption

	// clip is the shape's own clip; empty means none.
	clip image.Rectangle
}

// options returns the fill options for drawing the shape inside band. It
// reports false when the shape's clip misses the band.
func (c *compiled) options(common []aafill.FillOption, band image.Rectangle) ([]aafill.FillOption, bool) {
	clip := band
	if !c.clip.Empty() {
		clip = c.clip.Intersect(band)
	}
	if clip.Empty() {
		return nil, false
	}
	return slices.Concat(common, c.opts, []aafill.FillOption{aafill.WithClip(clip)}), true
}

// compile parses the path and the shape's own options.
func (s *Shape) compile() (*compiled, error) {
	p, err := ParsePath(s.Path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(s.FillRule) {
	case "", "nonzero":
		p.SetFillRule(aafill.NonZero)
	case "evenodd":
		p.SetFillRule(aafill.EvenOdd)
	default:
		return nil, fmt.Errorf("unknown fill rule %q", s.FillRule)
	}
	p.SetInverse(s.Inverse)
	c := &compiled{path: p}

	switch len(s.Transform) {
	case 0:
	case 6:
		var m matrix.Matrix
		copy(m[:], s.Transform)
		c.opts = append(c.opts, aafill.WithTransform(m))
	default:
		return nil, fmt.Errorf("transform needs 6 values, got %d", len(s.Transform))
	}
	switch len(s.Clip) {
	case 0:
	case 4:
		c.clip = image.Rect(s.Clip[0], s.Clip[1], s.Clip[2], s.Clip[3])
		if c.clip.Empty() {
			return nil, fmt.Errorf("clip %v is empty", s.Clip)
		}
	default:
		return nil, fmt.Errorf("clip needs 4 values, got %d", len(s.Clip))
	}
	if c.color, err = ParseColor(s.Color); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa. An empty string is black.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{A: 0xFF}, nil
	}
	if s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	var v [4]uint8
	for i := range v {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return color.NRGBA{}, fmt.Errorf("bad color %q", s)
		}
		v[i] = hi<<4 | lo
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
