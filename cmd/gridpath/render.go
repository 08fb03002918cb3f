package main

import (
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Cell glyphs.
const (
	glyphFree    = '.'
	glyphWall    = '#'
	glyphVisited = 'o'
	glyphPath    = '*'
	glyphStart   = 'S'
	glyphEnd     = 'E'
	glyphNewline = '\n'
)

// Render draws g row by row: walls, cells finalized by the last search,
// the given path, and the designated endpoints on top.
func Render(g *gridgraph.GridGraph, path []gridgraph.Position) string {
	cells := make([]byte, g.Len())
	for i := range cells {
		n := g.At(i)
		switch {
		case n.Obstacle:
			cells[i] = glyphWall
		case n.Visited:
			cells[i] = glyphVisited
		default:
			cells[i] = glyphFree
		}
	}
	put := func(p gridgraph.Position, c byte) {
		if i, err := g.Index(p); err == nil {
			cells[i] = c
		}
	}
	for _, p := range path {
		put(p, glyphPath)
	}
	if p, ok := g.Start(); ok {
		put(p, glyphStart)
	}
	if p, ok := g.End(); ok {
		put(p, glyphEnd)
	}

	var b strings.Builder
	b.Grow(g.Len() + g.Height)
	for y := 0; y < g.Height; y++ {
		b.Write(cells[y*g.Width : (y+1)*g.Width])
		if y < g.Height-1 {
			b.WriteByte(glyphNewline)
		}
	}
	return b.String()
}
