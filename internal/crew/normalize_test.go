package crew

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jaxzo84/five-parsecs-builder/pkg/models"
)

func TestParseRejectsMalformedBody(t *testing.T) {
	if _, err := Parse([]byte(`{"name": `)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if _, err := Parse([]byte(`[1, 2, 3]`)); err == nil {
		t.Fatal("expected error for a non-object body")
	}
}

func TestNormalizeEmptyRecord(t *testing.T) {
	got := Normalize(map[string]interface{}{})

	want := models.Crew{
		Ship: models.Ship{Debt: "0"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize({}) mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeMemberDefaults(t *testing.T) {
	got := Normalize(map[string]interface{}{
		"members": []interface{}{
			map[string]interface{}{},
		},
	})

	want := models.Member{
		Name:      "Unknown",
		Reactions: "1",
		Speed:     `4"`,
		Combat:    "0",
		Toughness: "3",
		Savvy:     "0",
		Luck:      "0",
		XP:        "0",
	}
	if len(got.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(got.Members))
	}
	if diff := cmp.Diff(want, got.Members[0]); diff != "" {
		t.Errorf("member defaults mismatch (-want +got):\n%s", diff)
	}
}

// The builder submits stats as numbers or strings depending on the
// input widget; both forms must normalize identically.
func TestNormalizeMixedScalarForms(t *testing.T) {
	asNumbers := Normalize(map[string]interface{}{
		"credits": float64(150),
		"members": []interface{}{
			map[string]interface{}{"name": "Kade", "combat": float64(2), "luck": float64(1)},
		},
	})
	asStrings := Normalize(map[string]interface{}{
		"credits": "150",
		"members": []interface{}{
			map[string]interface{}{"name": "Kade", "combat": "2", "luck": "1"},
		},
	})
	if diff := cmp.Diff(asNumbers, asStrings); diff != "" {
		t.Errorf("numeric and string forms diverge (-numbers +strings):\n%s", diff)
	}
	if asNumbers.Credits != 150 {
		t.Errorf("credits = %d, want 150", asNumbers.Credits)
	}
	if asNumbers.Members[0].Combat != "2" {
		t.Errorf("combat = %q, want \"2\"", asNumbers.Members[0].Combat)
	}
}

func TestNormalizeLeaderFirst(t *testing.T) {
	got := Normalize(map[string]interface{}{
		"members": []interface{}{
			map[string]interface{}{"name": "Ilya"},
			map[string]interface{}{"name": "Kade", "isCapitain": true},
			map[string]interface{}{"name": "Brel"},
		},
	})

	names := memberNames(got.Members)
	want := []string{"Kade", "Ilya", "Brel"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("render order mismatch (-want +got):\n%s", diff)
	}
	if !got.Members[0].IsCaptain {
		t.Error("leader lost the captain flag")
	}
}

// Only the first flagged member is "the" captain; later flagged members
// are demoted but must not vanish from the roster.
func TestNormalizeDemotesExtraCaptains(t *testing.T) {
	got := Normalize(map[string]interface{}{
		"members": []interface{}{
			map[string]interface{}{"name": "Kade", "isCapitain": true},
			map[string]interface{}{"name": "Vosh", "isCapitain": true},
		},
	})

	if len(got.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(got.Members))
	}
	if !got.Members[0].IsCaptain {
		t.Error("first flagged member should stay captain")
	}
	if got.Members[1].IsCaptain {
		t.Error("second flagged member should be demoted")
	}
	if got.Members[1].Name != "Vosh" {
		t.Errorf("demoted member = %q, want \"Vosh\"", got.Members[1].Name)
	}
}

func TestNormalizeCustomWeaponName(t *testing.T) {
	got := Normalize(map[string]interface{}{
		"members": []interface{}{
			map[string]interface{}{
				"weapons": []interface{}{
					map[string]interface{}{"name": "Custom / Other", "customName": "Scrap Cannon"},
					map[string]interface{}{"name": "Hand gun", "range": `12"`},
				},
			},
		},
	})

	weapons := got.Members[0].Weapons
	if weapons[0].Name != "Scrap Cannon" {
		t.Errorf("custom weapon name = %q, want \"Scrap Cannon\"", weapons[0].Name)
	}
	if weapons[1].Name != "Hand gun" {
		t.Errorf("regular weapon name = %q, want \"Hand gun\"", weapons[1].Name)
	}
}

func TestNormalizeFiltersEmptyGear(t *testing.T) {
	got := Normalize(map[string]interface{}{
		"members": []interface{}{
			map[string]interface{}{
				"gear": []interface{}{"Med-patch", "", nil, "Booster pills"},
			},
		},
	})

	want := []string{"Med-patch", "Booster pills"}
	if diff := cmp.Diff(want, got.Members[0].Gear); diff != "" {
		t.Errorf("gear mismatch (-want +got):\n%s", diff)
	}
}

func memberNames(members []models.Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names
}
