// Package crew converts the raw crew-builder JSON payload into the
// fully-defaulted records the renderer consumes. All "is this field
// missing" handling lives here, in one pass.
package crew

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jaxzo84/five-parsecs-builder/pkg/models"
)

// customWeaponName is the builder's sentinel for a hand-entered weapon;
// the real name travels in the customName field.
const customWeaponName = "Custom / Other"

// Parse decodes a crew-builder request body and normalizes it.
func Parse(body []byte) (models.Crew, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.Crew{}, fmt.Errorf("decoding crew record: %w", err)
	}
	return Normalize(raw), nil
}

// Normalize maps an untyped crew record onto models.Crew, applying
// defaults and reordering members leader-first. It never fails: any
// structurally-valid record produces a renderable crew.
func Normalize(raw map[string]interface{}) models.Crew {
	ship := getMap(raw, "ship")

	c := models.Crew{
		Name:        asString(raw["name"]),
		Credits:     getInt(raw, "credits", 0),
		StoryPoints: getInt(raw, "storyPoints", 0),
		QuestRumors: getInt(raw, "questRumors", 0),
		Patrons:     getInt(raw, "patrons", 0),
		Rivals:      getInt(raw, "rivals", 0),
		Stash:       asString(raw["stash"]),
		Ship: models.Ship{
			Name:     asString(ship["name"]),
			Type:     asString(ship["type"]),
			Hull:     asString(ship["hull"]),
			Debt:     getString(ship, "debt", "0"),
			Trait:    asString(ship["trait"]),
			Upgrades: asString(ship["upgrades"]),
		},
		Met:             asString(raw["met"]),
		CharacterizedAs: asString(raw["characterizedAs"]),
		Notes:           asString(raw["notes"]),
	}

	for _, entry := range getList(raw, "members") {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		c.Members = append(c.Members, normalizeMember(m))
	}
	c.Members = leaderFirst(c.Members)

	return c
}

func normalizeMember(m map[string]interface{}) models.Member {
	mem := models.Member{
		Name:      getString(m, "name", "Unknown"),
		Species:   asString(m["species"]),
		IsCaptain: asBool(m["isCapitain"]),

		Reactions: getString(m, "reactions", "1"),
		Speed:     getString(m, "speed", `4"`),
		Combat:    getString(m, "combat", "0"),
		Toughness: getString(m, "toughness", "3"),
		Savvy:     getString(m, "savvy", "0"),
		Luck:      getString(m, "luck", "0"),
		XP:        getString(m, "xp", "0"),

		Background: asString(m["background"]),
		Motivation: asString(m["motivation"]),
		Class:      asString(m["charClass"]),
		Armor:      asString(m["armor"]),
		Implants:   asString(m["implants"]),

		Notes: strings.TrimSpace(asString(m["notes"])),
	}

	for _, entry := range getList(m, "weapons") {
		w, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		mem.Weapons = append(mem.Weapons, normalizeWeapon(w))
	}

	for _, entry := range getList(m, "gear") {
		if g := asString(entry); g != "" {
			mem.Gear = append(mem.Gear, g)
		}
	}

	return mem
}

func normalizeWeapon(w map[string]interface{}) models.Weapon {
	name := asString(w["name"])
	if name == customWeaponName {
		name = asString(w["customName"])
	}
	return models.Weapon{
		Name:   name,
		Range:  asString(w["range"]),
		Shots:  asString(w["shots"]),
		Damage: asString(w["damage"]),
		Traits: asString(w["traits"]),
	}
}

// leaderFirst moves the first captain-flagged member to the front and
// demotes any additional flagged members to ordinary crew, keeping the
// submitted order otherwise.
func leaderFirst(members []models.Member) []models.Member {
	leader := -1
	for i := range members {
		if !members[i].IsCaptain {
			continue
		}
		if leader < 0 {
			leader = i
		} else {
			members[i].IsCaptain = false
		}
	}
	if leader <= 0 {
		return members
	}

	ordered := make([]models.Member, 0, len(members))
	ordered = append(ordered, members[leader])
	ordered = append(ordered, members[:leader]...)
	ordered = append(ordered, members[leader+1:]...)
	return ordered
}

// asString renders any JSON scalar in its submitted textual form. The
// builder sends stats as numbers or strings interchangeably.
func asString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func asBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1"
	case float64:
		return val != 0
	default:
		return false
	}
}

func getString(m map[string]interface{}, key, defaultValue string) string {
	if s := asString(m[key]); s != "" {
		return s
	}
	return defaultValue
}

func getInt(m map[string]interface{}, key string, defaultValue int) int {
	switch val := m[key].(type) {
	case float64:
		return int(val)
	case string:
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
		return defaultValue
	default:
		return defaultValue
	}
}

func getMap(m map[string]interface{}, key string) map[string]interface{} {
	if sub, ok := m[key].(map[string]interface{}); ok {
		return sub
	}
	return map[string]interface{}{}
}

func getList(m map[string]interface{}, key string) []interface{} {
	if list, ok := m[key].([]interface{}); ok {
		return list
	}
	return nil
}
