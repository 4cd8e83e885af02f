// Package render is the crew log layout engine: it maps a normalized
// crew record onto an absolute-coordinate A4 canvas and serializes the
// result as a PDF.
package render

import (
	"fmt"

	"github.com/jaxzo84/five-parsecs-builder/pkg/models"
)

// Assemble renders the crew record into a finished PDF document.
// Identical input produces byte-identical output. A panic anywhere in
// the drawing path is recovered and returned as an error; no partial
// document is ever produced.
func Assemble(crew models.Crew) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rendering crew log: %v", r)
		}
	}()

	c := newPDFCanvas()
	assembleInto(c, crew)
	return c.Bytes()
}

// assembleInto drives the full page sequence on any canvas. Split out
// so tests can observe draw calls without decoding PDF bytes.
func assembleInto(c Canvas, crew models.Crew) {
	w, _ := c.PageSize()
	colW := w/2 - 15
	col2X := w/2 + 3

	drawPageBackground(c)
	drawHeaderBar(c, crew)
	drawStashBox(c, marginX, contentTop, colW, crew.Stash)
	drawShipBox(c, col2X, contentTop, colW, crew.Ship)
	drawNotesBox(c, marginX, notesBoxTop, w-2*marginX, crew)
	drawSectionRule(c, sectionRuleY, "CREW MEMBERS")
	composeMembers(c, crew.Members, memberSectionTop)
	drawFooter(c)
}
