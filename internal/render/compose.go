package render

import (
	"github.com/jaxzo84/five-parsecs-builder/pkg/models"
)

// cursor is the pagination state threaded through the member loop:
// which page the composer is on and the top edge of the current row.
type cursor struct {
	page int
	y    float64
}

// composeMembers places member cards two per row (even index left
// column, odd index right) starting at startY. The normalizer has
// already moved the leader to the front. Before a row is placed, if
// the remaining vertical space is smaller than one card, the composer
// commits the page, repaints the background and resets the cursor to
// the top margin. Returns the final pagination state.
func composeMembers(c Canvas, members []models.Member, startY float64) cursor {
	w, h := c.PageSize()
	colW := w/2 - 15
	leftX := marginX
	rightX := w/2 + 3

	cur := cursor{page: 1, y: startY}
	for i, m := range members {
		if i%2 == 0 && i > 0 {
			cur.y += rowPitch
		}
		if cur.y+cardH > h-pageBottomMargin {
			c.NewPage()
			drawPageBackground(c)
			cur.page++
			cur.y = pageTopMargin
		}
		x := leftX
		if i%2 == 1 {
			x = rightX
		}
		drawMemberCard(c, m, x, cur.y, colW)
	}
	return cur
}
