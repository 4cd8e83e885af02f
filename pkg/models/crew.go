package models

// Crew is the normalized form of a crew-builder submission. Every field
// is fully defaulted by internal/crew.Normalize before rendering, so the
// render path never checks for missing data.
type Crew struct {
	Name        string
	Credits     int
	StoryPoints int
	QuestRumors int
	Patrons     int
	Rivals      int

	Stash string // multi-line shared equipment log

	Ship Ship

	// Flavor text, each optional (empty when not provided).
	Met             string
	CharacterizedAs string
	Notes           string

	// Members is leader-first: if any member carried the captain flag,
	// the first such member has been moved to the front.
	Members []Member
}

// Ship describes the crew's ship. Hull and Debt keep their submitted
// textual form ("30", "12") since the sheet prints them verbatim.
type Ship struct {
	Name     string
	Type     string
	Hull     string
	Debt     string // numeric string, rendered with a " credits" suffix
	Trait    string
	Upgrades string
}

// Member is one crew member card. Stat fields are display strings: the
// builder submits them as numbers or strings interchangeably, and the
// sheet prints them as-is (Combat and Savvy get signed formatting at
// render time).
type Member struct {
	Name      string
	Species   string
	IsCaptain bool

	Reactions string
	Speed     string
	Combat    string
	Toughness string
	Savvy     string
	Luck      string
	XP        string

	Background string
	Motivation string
	Class      string
	Armor      string
	Implants   string

	Weapons []Weapon
	Gear    []string // empty entries already dropped
	Notes   string
}

// Weapon is one row of a member's weapon table. The "Custom / Other"
// sentinel name has already been resolved to the custom override.
type Weapon struct {
	Name   string
	Range  string
	Shots  string
	Damage string
	Traits string
}

// ErrorResponse is the JSON error envelope for non-document endpoints
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
