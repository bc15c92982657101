package pdfdoc

import "codeberg.org/go-pdf/fpdf"

// Page geometry in points: US Letter with a fixed margin on all sides.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	margin     = 40.0

	lineHeight    = 12.0
	rowGap        = 8.0
	columnGap     = 18.0
	labelIndent   = 120.0
	labelReserve  = 110.0
	headingHeight = 24.0
)

var (
	headingColor = [3]int{166, 13, 13}
	labelColor   = [3]int{97, 97, 97}
	textColor    = [3]int{0, 0, 0}
)

// layoutCursor tracks the vertical position on the current page. It is an
// explicit value owned by one render pass; nothing layout-related lives in
// package state.
type layoutCursor struct {
	doc *fpdf.Fpdf
	y   float64
}

func newLayoutCursor(doc *fpdf.Fpdf) *layoutCursor {
	doc.AddPage()
	return &layoutCursor{doc: doc, y: margin}
}

// ensureSpace allocates a new page when a block of the given height would
// cross the bottom margin. Greedy and single-pass: content already placed
// is never revisited.
func (c *layoutCursor) ensureSpace(height float64) {
	if c.y+height > pageHeight-margin {
		c.doc.AddPage()
		c.y = margin
	}
}

// advance moves the cursor down by height.
func (c *layoutCursor) advance(height float64) {
	c.y += height
}

func columnWidth() float64 {
	return (pageWidth - margin*2 - columnGap) / 2
}

func columnX(index int) float64 {
	return margin + (columnWidth()+columnGap)*float64(index)
}
