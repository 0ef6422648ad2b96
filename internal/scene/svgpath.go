// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"fmt"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"

	"github.com/gogpu/aafill"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ',' || parse.IsWhitespace(b[i])) {
		i++
	}
	return i
}

// pathParser reads SVG path data.
type pathParser struct {
	b   []byte
	i   int
	err error
}

func (p *pathParser) num() float64 {
	if p.err != nil {
		return 0
	}
	p.i += skipCommaWhitespace(p.b[p.i:])
	f, n := strconv.ParseFloat(p.b[p.i:])
	if n == 0 {
		p.err = fmt.Errorf("scene: expected number at offset %d", p.i)
		return 0
	}
	p.i += n
	return f
}

// ParsePath parses SVG path data with the M, L, H, V, Q, C and Z commands
// in absolute (upper case) and relative (lower case) form. Arguments of a
// repeated command may omit the letter; extra pairs after M are lines.
func ParsePath(data string) (*aafill.Path, error) {
	p := &pathParser{b: []byte(data)}
	out := aafill.NewPath()

	var cmd byte
	var x, y, startX, startY float64
	for {
		p.i += skipCommaWhitespace(p.b[p.i:])
		if p.i >= len(p.b) {
			break
		}
		if c := p.b[p.i]; c >= 'A' {
			cmd = c
			p.i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("scene: path data must start with a command, got %q", c)
		}

		rel := cmd >= 'a'
		ox, oy := 0.0, 0.0
		if rel {
			ox, oy = x, y
		}
		switch cmd {
		case 'M', 'm':
			x, y = ox+p.num(), oy+p.num()
			out.MoveTo(x, y)
			startX, startY = x, y
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			x, y = ox+p.num(), oy+p.num()
			out.LineTo(x, y)
		case 'H', 'h':
			x = ox + p.num()
			out.LineTo(x, y)
		case 'V', 'v':
			y = oy + p.num()
			out.LineTo(x, y)
		case 'Q', 'q':
			cx, cy := ox+p.num(), oy+p.num()
			x, y = ox+p.num(), oy+p.num()
			out.QuadTo(cx, cy, x, y)
		case 'C', 'c':
			c1x, c1y := ox+p.num(), oy+p.num()
			c2x, c2y := ox+p.num(), oy+p.num()
			x, y = ox+p.num(), oy+p.num()
			out.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case 'Z', 'z':
			out.Close()
			x, y = startX, startY
			cmd = 0
		default:
			return nil, fmt.Errorf("scene: unsupported path command %q", cmd)
		}
		if p.err != nil {
			return nil, p.err
		}
	}
	return out, nil
}
