// math/rect.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "fmt"

///////////////////////////////////////////////////////////////////////////
// Rect

// Rect is an axis-aligned rectangle in pixel coordinates. Containment of
// points is half-open: the left and top edges are inside the rectangle
// while the right and bottom edges are not. A Rect is valid if
// Left <= Right and Top <= Bottom.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// RectFromXYWH returns the rectangle with top-left corner (x, y) and the
// given width and height.
func RectFromXYWH(x, y, w, h int32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// BoundingRect returns the tightest rectangle that includes all of the
// given points; note that the points on its right and bottom edges are not
// Inside() it. An empty point set is a contract violation.
func BoundingRect(pts [][2]int32) (Rect, error) {
	if len(pts) == 0 {
		return Rect{}, contractf("BoundingRect", "no points provided")
	}

	r := Rect{Left: pts[0][0], Top: pts[0][1], Right: pts[0][0], Bottom: pts[0][1]}
	for _, p := range pts[1:] {
		r.Left = min(r.Left, p[0])
		r.Right = max(r.Right, p[0])
		r.Top = min(r.Top, p[1])
		r.Bottom = max(r.Bottom, p[1])
	}
	return r, nil
}

// BoundingRectXY is equivalent to BoundingRect for points stored as
// separate x and y coordinate slices, which must have the same length.
func BoundingRectXY(xs, ys []int32) (Rect, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return Rect{}, contractf("BoundingRectXY", "no points provided")
	}
	if len(xs) != len(ys) {
		return Rect{}, contractf("BoundingRectXY", "%d x coordinates but %d y coordinates", len(xs), len(ys))
	}

	r := Rect{Left: xs[0], Top: ys[0], Right: xs[0], Bottom: ys[0]}
	for i := 1; i < len(xs); i++ {
		r.Left = min(r.Left, xs[i])
		r.Right = max(r.Right, xs[i])
		r.Top = min(r.Top, ys[i])
		r.Bottom = max(r.Bottom, ys[i])
	}
	return r, nil
}

func (r Rect) Width() int32 {
	return r.Right - r.Left
}

func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

func (r Rect) Center() [2]int32 {
	return [2]int32{r.Left + r.Width()/2, r.Top + r.Height()/2}
}

// Area returns the rectangle's area. It is negative for inverted
// rectangles.
func (r Rect) Area() int32 {
	return r.Width() * r.Height()
}

func (r Rect) Valid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Empty reports whether the rectangle contains no pixels.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d]-[%d,%d]", r.Left, r.Top, r.Right, r.Bottom)
}

func (r Rect) Inside(p [2]int32) bool {
	return r.InsideXY(p[0], p[1])
}

func (r Rect) InsideXY(x, y int32) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Contains reports whether inner lies entirely within r; all four edges
// are inclusive, so a rectangle contains itself.
func (r Rect) Contains(inner Rect) bool {
	return inner.Left >= r.Left && inner.Right <= r.Right &&
		inner.Top >= r.Top && inner.Bottom <= r.Bottom
}

// Within reports whether r lies entirely within outer.
func (r Rect) Within(outer Rect) bool {
	return outer.Contains(r)
}

// Enlarge moves all four edges outward by the given offset; a negative
// offset shrinks the rectangle. The result is not checked for validity.
func (r Rect) Enlarge(offset int32) Rect {
	return Rect{
		Left:   r.Left - offset,
		Top:    r.Top - offset,
		Right:  r.Right + offset,
		Bottom: r.Bottom + offset,
	}
}

// Stretch grows each dimension of the rectangle that is smaller than
// minDim by minDim/2 on either side, so that raster limits are at least
// as wide as a block.
func (r Rect) Stretch(minDim int32) Rect {
	if r.Height() < minDim {
		r.Top -= minDim / 2
		r.Bottom += minDim / 2
	}
	if r.Width() < minDim {
		r.Left -= minDim / 2
		r.Right += minDim / 2
	}
	return r
}

// ClipToBounds clamps each edge independently to [0, size]. A rectangle
// that lies entirely off-screen may come back inverted; callers should
// check Valid() or Empty().
func (r Rect) ClipToBounds(size [2]int32) Rect {
	r.Left = max(r.Left, 0)
	r.Top = max(r.Top, 0)
	r.Right = min(r.Right, size[0])
	r.Bottom = min(r.Bottom, size[1])
	return r
}

// Split partitions r into tiles of at most w by h pixels, returned in
// row-major order. Tiles in the last row and column are clipped to r. If r
// is not at least one whole tile wide and one whole tile tall, no tiles
// are returned. Tile positions are stepped in 64 bits so that rectangles
// reaching the int32 limits still terminate.
func (r Rect) Split(w, h int32) []Rect {
	if w <= 0 || h <= 0 {
		return nil
	}
	width, height := int64(r.Right)-int64(r.Left), int64(r.Bottom)-int64(r.Top)
	if width/int64(w) <= 0 || height/int64(h) <= 0 {
		return nil
	}

	ncols, nrows := (width+int64(w)-1)/int64(w), (height+int64(h)-1)/int64(h)
	tiles := make([]Rect, 0, ncols*nrows)
	for y := int64(r.Top); y < int64(r.Bottom); y += int64(h) {
		for x := int64(r.Left); x < int64(r.Right); x += int64(w) {
			tiles = append(tiles, Rect{
				Left:   int32(x),
				Top:    int32(y),
				Right:  int32(min(int64(r.Right), x+int64(w))),
				Bottom: int32(min(int64(r.Bottom), y+int64(h))),
			})
		}
	}
	return tiles
}

///////////////////////////////////////////////////////////////////////////
// Rect algebra

// Union returns the smallest rectangle containing both a and b. If the
// inputs are inverted, the result is collapsed so that it is still valid.
func Union(a, b Rect) Rect {
	r := Rect{
		Left:   min(a.Left, b.Left),
		Right:  max(a.Right, b.Right),
		Top:    min(a.Top, b.Top),
		Bottom: max(a.Bottom, b.Bottom),
	}
	if r.Left > r.Right {
		r.Left = r.Right
	}
	if r.Bottom < r.Top {
		r.Bottom = r.Top
	}
	return r
}

// Intersect returns the overlap of a and b. If they don't overlap, the
// result has zero width and/or height rather than being inverted.
func Intersect(a, b Rect) Rect {
	r := Rect{
		Left:   max(a.Left, b.Left),
		Right:  min(a.Right, b.Right),
		Top:    max(a.Top, b.Top),
		Bottom: min(a.Bottom, b.Bottom),
	}
	if r.Left >= r.Right {
		r.Left = r.Right
	}
	if r.Bottom <= r.Top {
		r.Bottom = r.Top
	}
	return r
}
