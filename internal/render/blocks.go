package render

import (
	"strconv"
	"strings"

	"github.com/jaxzo84/five-parsecs-builder/pkg/models"
)

const footerText = "Permission is granted to make copies of this form for personal use.  •  Five Parsecs from Home Third Edition  •  © Modiphius Entertainment"

func drawPageBackground(c Canvas) {
	w, h := c.PageSize()
	c.FillRect(0, 0, w, h, colBG)
}

// drawHeaderBar paints the full-width title band: game title, sheet
// subtitle, crew name, and the five campaign stats in a two-row grid
// anchored to the right edge.
func drawHeaderBar(c Canvas, crew models.Crew) {
	w, _ := c.PageSize()
	c.FillRect(0, 0, w, headerH, colSurface)
	c.Line(0, headerH, w, headerH, colGold, 0.5)

	c.Text(marginX, 22, "FIVE PARSECS FROM HOME", Style{FontStyle: "B", Size: 22, Color: colGold})
	c.Text(marginX, 29, "CREW LOG — THIRD EDITION", Style{Size: 9, Color: colTextDim})
	c.Text(marginX, 40, OrPlaceholder(crew.Name), Style{FontStyle: "B", Size: 14, Color: colText})

	rightX := w - 80
	stat := func(label string, value int, x, y float64) {
		c.Text(x, y-1.8, label, Style{Size: 6, Color: colTextDim})
		c.Text(x, y+2.0, strconv.Itoa(value), Style{FontStyle: "B", Size: 11, Color: colGold})
	}
	stat("CREDITS", crew.Credits, rightX, 24)
	stat("STORY POINTS", crew.StoryPoints, rightX+22, 24)
	stat("QUEST RUMORS", crew.QuestRumors, rightX, 38)
	stat("PATRONS", crew.Patrons, rightX+22, 38)
	stat("RIVALS", crew.Rivals, rightX+44, 38)
}

// drawBox paints a bordered surface panel with a title tab along its
// top edge. The generic container for ship, stash and notes sections.
func drawBox(c Canvas, x, y, w, h float64, title string) {
	c.BorderRect(x, y, w, h, colSurface, colBorder, 0.2)
	if title != "" {
		c.FillRect(x, y, w, boxTitleH, colBorder)
		c.Text(x+2, y+3.5, title, Style{FontStyle: "B", Size: 6, Color: colGold})
	}
}

func drawShipBox(c Canvas, x, y, w float64, ship models.Ship) {
	drawBox(c, x, y, w, shipBoxH, "SHIP DETAILS")
	fields := []struct{ label, value string }{
		{"SHIP NAME", OrPlaceholder(ship.Name)},
		{"TYPE", OrPlaceholder(ship.Type)},
		{"HULL POINTS", OrPlaceholder(ship.Hull)},
		{"DEBT", ship.Debt + " credits"},
		{"TRAIT", fallback(ship.Trait, "None")},
		{"UPGRADES", fallback(ship.Upgrades, "None")},
	}
	rowY := y + 12.0
	for _, f := range fields {
		c.Text(x+2, rowY-1.4, f.label, Style{Size: 6, Color: colTextDim})
		c.Text(x+2, rowY+1.6, Truncate(f.value, 45), Style{Size: 9, Color: colText})
		rowY += 6
	}
}

func drawStashBox(c Canvas, x, y, w float64, stash string) {
	drawBox(c, x, y, w, stashBoxH, "STASH & SHARED EQUIPMENT")
	lines := strings.Split(fallback(stash, "(empty)"), "\n")
	if len(lines) > maxStashLines {
		lines = lines[:maxStashLines]
	}
	rowY := y + 12.0
	for _, line := range lines {
		c.Text(x+2, rowY, Truncate(line, 50), Style{Size: 8, Color: colText})
		rowY += 5
	}
}

// drawNotesBox renders the crew flavor section. Each sub-item appears
// only when non-empty; free notes are capped at two lines.
func drawNotesBox(c Canvas, x, y, w float64, crew models.Crew) {
	drawBox(c, x, y, w, notesBoxH, "CREW NOTES & FLAVOR")
	rowY := y + 8.0
	if crew.Met != "" {
		c.Text(x+2, rowY, "We met through:", Style{FontStyle: "I", Size: 7, Color: colTextDim})
		c.Text(x+35, rowY, crew.Met, Style{Size: 8, Color: colText})
		rowY += 5
	}
	if crew.CharacterizedAs != "" {
		c.Text(x+2, rowY, "Best characterized as:", Style{FontStyle: "I", Size: 7, Color: colTextDim})
		c.Text(x+42, rowY, crew.CharacterizedAs, Style{Size: 8, Color: colText})
		rowY += 5
	}
	if crew.Notes != "" {
		lines := strings.Split(crew.Notes, "\n")
		if len(lines) > maxNotesLines {
			lines = lines[:maxNotesLines]
		}
		for _, line := range lines {
			c.Text(x+2, rowY, Truncate(line, 90), Style{Size: 8, Color: colText})
			rowY += 5
		}
	}
}

// drawSectionRule paints the small gold section heading with its
// full-width underline.
func drawSectionRule(c Canvas, y float64, title string) {
	w, _ := c.PageSize()
	c.Text(marginX, y-0.7, title, Style{FontStyle: "B", Size: 7, Color: colGold})
	c.Line(marginX, y, w-marginX, y, colGold, 0.18)
}

// drawMemberCard renders one fixed-height member card at (x, y). Every
// sub-element sits at a fixed offset from the card origin; overlong
// text is truncated, never reflowed.
func drawMemberCard(c Canvas, m models.Member, x, y, w float64) {
	borderColor, barColor := colBorder, colBorder
	nameColor, speciesColor := colText, colTextDim
	lineWidth := 0.2
	if m.IsCaptain {
		borderColor, barColor = colGold, colGold
		nameColor, speciesColor = colTextDark, colTextDark
		lineWidth = 0.35
	}
	c.BorderRect(x, y, w, cardH, colSurface, borderColor, lineWidth)

	// Title bar
	c.FillRect(x, y, w, 6, barColor)
	name := m.Name
	if m.IsCaptain {
		name = "★ CAPTAIN  " + name
	}
	c.Text(x+2, y+4, name, Style{FontStyle: "B", Size: 8, Color: nameColor})
	c.Text(x+w-2, y+4, m.Species, Style{Size: 6, Color: speciesColor, Anchor: AnchorEnd})

	drawStatCells(c, m, x, y+10, w)

	// Background / motivation on the left, class / armor on the right
	infoY := y + 21.0
	c.Text(x+2, infoY, "BG:", Style{Size: 6, Color: colTextDim})
	c.Text(x+8, infoY, Truncate(OrPlaceholder(m.Background), 22), Style{Size: 6, Color: colText})
	c.Text(x+2, infoY+4, "MOT:", Style{Size: 6, Color: colTextDim})
	c.Text(x+9, infoY+4, Truncate(OrPlaceholder(m.Motivation), 22), Style{Size: 6, Color: colText})
	c.Text(x+w/2, infoY, "CLASS:", Style{Size: 6, Color: colTextDim})
	c.Text(x+w/2+11, infoY, Truncate(OrPlaceholder(m.Class), 18), Style{Size: 6, Color: colText})
	if m.Armor != "" {
		c.Text(x+w/2, infoY+4, "ARMOR:", Style{Size: 6, Color: colTextDim})
		c.Text(x+w/2+11, infoY+4, m.Armor, Style{Size: 6, Color: colText})
	}
	if m.Implants != "" {
		c.Text(x+2, infoY+8, "IMPLANTS:", Style{Size: 5.5, Color: colTextDim})
		c.Text(x+16, infoY+8, Truncate(m.Implants, 40), Style{Size: 5.5, Color: colText})
	}

	drawWeaponTable(c, m.Weapons, x, y+31.5, w)

	if len(m.Gear) > 0 {
		c.Text(x+2, y+53, "GEAR:", Style{Size: 5.5, Color: colTextDim})
		c.Text(x+10, y+53, Truncate(strings.Join(m.Gear, ", "), 65), Style{Size: 5.5, Color: colText})
	}
	if m.Notes != "" {
		c.Text(x+2, y+55.5, Truncate(m.Notes, 80), Style{FontStyle: "I", Size: 5.5, Color: colTextDim})
	}
}

// drawStatCells paints the row of seven equal-width stat boxes.
func drawStatCells(c Canvas, m models.Member, x, y, w float64) {
	stats := []struct{ label, value string }{
		{"REACT", m.Reactions},
		{"SPEED", m.Speed},
		{"COMBAT", FormatSigned(m.Combat)},
		{"TOUGH", m.Toughness},
		{"SAVVY", FormatSigned(m.Savvy)},
		{"LUCK", m.Luck},
		{"XP", m.XP},
	}
	cellW := w / float64(len(stats))
	for i, s := range stats {
		cx := x + float64(i)*cellW
		c.BorderRect(cx+0.2, y, cellW-0.4, 6, colBG, colBorder, 0.1)
		c.Text(cx+cellW/2, y+2, s.label, Style{Size: 5, Color: colTextDim, Anchor: AnchorCenter})
		c.Text(cx+cellW/2, y+5.5, s.value, Style{FontStyle: "B", Size: 9, Color: colGold, Anchor: AnchorCenter})
	}
}

// weaponColumns fixes the table's five column proportions.
var weaponColumns = []struct {
	head string
	frac float64
}{
	{"WEAPON", 0.33},
	{"RANGE", 0.12},
	{"SHOTS", 0.10},
	{"DMG", 0.08},
	{"TRAITS", 0.37},
}

// drawWeaponTable renders the header band and up to four data rows with
// alternating shading. Entries past the fourth are dropped.
func drawWeaponTable(c Canvas, weapons []models.Weapon, x, y, w float64) {
	c.FillRect(x, y, w, 4, colBorder)
	cx := x
	for _, col := range weaponColumns {
		c.Text(cx+0.4, y+2.8, col.head, Style{FontStyle: "B", Size: 5.5, Color: colTextDim})
		cx += col.frac * w
	}

	if len(weapons) > maxWeaponRows {
		weapons = weapons[:maxWeaponRows]
	}
	rowY := y + 4
	for i, wep := range weapons {
		if i%2 == 0 {
			c.FillRect(x, rowY, w, 4, colRowShade)
		}
		cells := []string{wep.Name, wep.Range, wep.Shots, wep.Damage, wep.Traits}
		cx = x
		for j, cell := range cells {
			colW := weaponColumns[j].frac * w
			c.Text(cx+0.4, rowY+2.8, Truncate(cell, cellBudget(colW)), Style{Size: 6, Color: colText})
			cx += colW
		}
		rowY += 4
	}
}

// cellBudget converts a column width in mm into a character budget at
// the table's 6pt font: half the width in points.
func cellBudget(w float64) int {
	return int(w * 72 / 25.4 / 2)
}

func drawFooter(c Canvas) {
	w, h := c.PageSize()
	c.Text(w/2, h-10, footerText, Style{Size: 6, Color: colTextDim, Anchor: AnchorCenter})
}
