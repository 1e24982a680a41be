// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/memgraph/graph"
	"github.com/gogpu/memgraph/internal/cache"
	"github.com/gogpu/memgraph/internal/logger"
	"github.com/gogpu/memgraph/style"
)

// Label sizes relative to the icon size.
var labelScale = map[graph.DocumentKind]float64{
	graph.KindPDF:      0.35,
	graph.KindMarkdown: 0.3,
	graph.KindWord:     0.28,
	graph.KindRTF:      0.3,
}

// icons draws document type glyphs. The label font is loaded on first use.
type icons struct {
	once   sync.Once
	source *text.FontSource
	faces  *cache.LRU[int, text.Face]
	upper  cases.Caser
}

// maxFaces bounds the face cache; zooming produces a new size per step.
const maxFaces = 32

func newIcons() *icons {
	return &icons{
		faces: cache.New[int, text.Face](maxFaces),
		upper: cases.Upper(language.Und),
	}
}

func (ic *icons) face(size float64) text.Face {
	ic.once.Do(func() {
		src, err := text.NewFontSource(gobold.TTF)
		if err != nil {
			logger.L().Warn("frame: icon font unavailable", "err", err)
			return
		}
		ic.source = src
	})
	if ic.source == nil {
		return nil
	}
	key := int(math.Round(size * 4))
	if key < 1 {
		return nil
	}
	return ic.faces.GetOrCreate(key, func() text.Face {
		return ic.source.Face(float64(key) / 4)
	})
}

func (ic *icons) close() error {
	ic.faces.Clear()
	if ic.source == nil {
		return nil
	}
	err := ic.source.Close()
	ic.source = nil
	return err
}

// draw paints the glyph for kind centered at (x, y). size is the icon
// height in screen pixels.
func (ic *icons) draw(p *pen, x, y, size float64, kind graph.DocumentKind, c style.Color) {
	if !(size > 0) {
		return
	}
	dc := p.dc
	p.line(math.Max(1, size/12), gg.LineCapRound)

	switch kind {
	case graph.KindPDF, graph.KindMarkdown, graph.KindWord, graph.KindRTF:
		dc.DrawRectangle(x-size*0.35, y-size*0.425, size*0.7, size*0.85)
		p.stroke(c)
		ic.label(p, x, y, size*labelScale[kind], string(kind), c)

	case graph.KindCSV:
		w, h := size*0.7, size*0.85
		dc.DrawRectangle(x-w/2, y-h/2, w, h)
		dc.MoveTo(x, y-h/2)
		dc.LineTo(x, y+h/2)
		dc.MoveTo(x-w/2, y)
		dc.LineTo(x+w/2, y)
		p.stroke(c)

	case graph.KindJSON:
		w, h := size*0.6, size*0.8
		dc.MoveTo(x-w/4, y-h/2)
		dc.QuadraticTo(x-w/2, y, x-w/4, y+h/2)
		dc.MoveTo(x+w/4, y-h/2)
		dc.QuadraticTo(x+w/2, y, x+w/4, y+h/2)
		p.stroke(c)

	default:
		page(p, x, y, size, c)
	}
}

// page is a sheet with a folded corner and three text lines.
func page(p *pen, x, y, size float64, c style.Color) {
	dc := p.dc
	w, h, fold := size*0.7, size*0.85, size*0.2
	left, top := x-w/2, y-h/2

	dc.MoveTo(left, top)
	dc.LineTo(left+w-fold, top)
	dc.LineTo(left+w, top+fold)
	dc.LineTo(left+w, top+h)
	dc.LineTo(left, top+h)
	dc.ClosePath()
	dc.MoveTo(left+w-fold, top)
	dc.LineTo(left+w-fold, top+fold)
	dc.LineTo(left+w, top+fold)

	spacing, lw := size*0.15, size*0.4
	for i := -1; i <= 1; i++ {
		ly := y + float64(i)*spacing + fold/2
		dc.MoveTo(x-lw/2, ly)
		dc.LineTo(x+lw/2, ly)
	}
	p.stroke(c)
}

func (ic *icons) label(p *pen, x, y, size float64, s string, c style.Color) {
	f := ic.face(size)
	if f == nil {
		return
	}
	p.color(c)
	p.dc.SetFont(f)
	p.dc.DrawStringAnchored(ic.upper.String(s), x, y, 0.5, 0.5)
}
