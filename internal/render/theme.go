package render

// Palette matching the rulebook's dark aesthetic.
var (
	colBG       = RGB{26, 26, 46}   // page background
	colSurface  = RGB{22, 33, 62}   // panel fill
	colGold     = RGB{201, 162, 39} // accents, captain highlight
	colBorder   = RGB{42, 48, 69}
	colText     = RGB{208, 212, 224}
	colTextDim  = RGB{122, 128, 152}
	colTextDark = RGB{13, 15, 20} // text on gold
	colRowShade = RGB{26, 30, 46} // alternating weapon rows
)

// Layout constants. Millimetres, Y increasing down an A4 portrait page.
const (
	marginX    = 12.0
	headerH    = 50.0
	contentTop = 58.0 // first row of boxes below the header band
	boxTitleH  = 5.0

	// Section origins below the stash/ship row.
	notesBoxTop      = contentTop + 44.0
	sectionRuleY     = contentTop + 80.0
	memberSectionTop = contentTop + 84.0

	shipBoxH  = 42.0
	stashBoxH = 42.0
	notesBoxH = 31.0

	cardH    = 56.0 // member card height
	rowPitch = 60.0 // vertical advance per member row

	pageTopMargin    = 20.0 // member cursor after a page break
	pageBottomMargin = 20.0

	maxWeaponRows = 4
	maxStashLines = 6
	maxNotesLines = 2
)
