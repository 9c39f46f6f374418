// Package render produces diagnostic previews of a generated level: a
// rasterized PNG grid and a vector SVG equivalent, for operators
// inspecting a run without decoding the raw JSON by hand.
package render

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/snakeoutgen/generator/internal/geom"
	"github.com/snakeoutgen/generator/internal/grid"
	"github.com/snakeoutgen/generator/internal/snake"
)

const cellSize = 12

var (
	colorVoid  = color.RGBA{30, 30, 30, 255}
	colorFloor = color.RGBA{230, 230, 230, 255}
	colorWall  = color.RGBA{20, 20, 20, 255}
	colorHole  = color.RGBA{90, 90, 90, 255}
	colorTun   = color.RGBA{120, 80, 200, 255}
)

// snakeColor derives a stable color from a snake's color id, the same way
// the teacher derives a snake's render color from a hash of its name
// (renderer.go's generateColor), substituting the color id for the name.
func snakeColor(colorID int) color.RGBA {
	h := sha1.New()
	fmt.Fprintf(h, "color-%d", colorID)
	sum := h.Sum(nil)
	return color.RGBA{sum[0], sum[1], sum[2], 255}
}

// PNG rasterizes the level to a PNG image, one cellSize×cellSize block per
// grid cell.
func PNG(g *grid.Grid, snakes []snake.Snake) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, g.Cols*cellSize, g.Rows*cellSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{colorVoid}, image.Point{}, draw.Src)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.IsPlayable(geom.Cell{Row: r, Col: c}) {
				fillCell(img, r, c, colorFloor)
			}
		}
	}

	for cell, obs := range g.Obstacles() {
		switch obs.Kind {
		case grid.Wall, grid.WallBreak:
			fillCell(img, cell.Row, cell.Col, colorWall)
		case grid.Hole:
			fillCell(img, cell.Row, cell.Col, colorHole)
		case grid.Tunnel:
			fillCell(img, cell.Row, cell.Col, colorTun)
		}
	}

	for _, sn := range snakes {
		col := snakeColor(sn.ColorID)
		for _, c := range sn.Cells() {
			fillCell(img, c.Row, c.Col, col)
		}
		head := sn.Head()
		drawLengthLabel(img, head.Row, head.Col, sn.Len(), col)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLengthLabel stamps a snake's length over its head cell, adapted from
// the teacher's addScaledLabel (which stamped each live snake's body
// length next to its render in the GIF sidebar) onto a contrasting color
// so it reads against the snake's own fill.
func drawLengthLabel(img *image.RGBA, row, col, length int, fill color.RGBA) {
	textColor := color.RGBA{255 - fill.R, 255 - fill.G, 255 - fill.B, 255}
	x0, y0 := col*cellSize, row*cellSize
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x0+1, y0+cellSize-2),
	}
	d.DrawString(fmt.Sprintf("%d", length))
}

func fillCell(img *image.RGBA, row, col int, c color.RGBA) {
	x0, y0 := col*cellSize, row*cellSize
	rect := image.Rect(x0+1, y0+1, x0+cellSize-1, y0+cellSize-1)
	draw.Draw(img, rect, &image.Uniform{c}, image.Point{}, draw.Src)
}
