package land

import (
	"fmt"
	"strings"
)

// ErrUnknownLand is returned by Categorize when a land name is not
// recognized by any rule, including the closed COLORLESS_LANDS set.
// Categorize is total over the supported card set and returns this error
// instead of guessing at a classification for an unfamiliar name.
var ErrUnknownLand = fmt.Errorf("land: unknown land name")

// colorlessLands enumerates the colorless-producing utility lands that
// have no other distinguishing name or rules-text pattern, matching
// original_source/mtg.py's hardcoded COLORLESS_LANDS set.
var colorlessLands = map[string]bool{
	"Blast Zone":           true,
	"Cryptic Caves":        true,
	"Emergence Zone":       true,
	"Field of Ruin":        true,
	"Karn's Bastion":       true,
	"Labyrinth of Skophos": true,
	"Mobilized District":   true,
	"Bonders' Enclave":     true,
}

var filteringLands = map[string]bool{
	"Guildmages' Forum": true,
	"Unknown Shores":    true,
}

// Categorize classifies a land card into the closed Type enumeration from
// its name, rules text, and supertypes, in the same priority order as
// original_source/mtg.py's _categorize_land. It returns ErrUnknownLand for
// any name not covered by a rule.
func Categorize(name, rulesText string, supertypes []string) (Type, error) {
	if containsString(supertypes, "Basic") {
		return Basic, nil
	}
	if strings.Contains(name, "Guildgate") {
		return Guildgate, nil
	}
	if strings.Contains(name, "Castle") {
		return Castle, nil
	}
	if name == "Fabled Passage" {
		return FabledPassage, nil
	}
	if name == "Evolving Wilds" {
		return EvolvingWilds, nil
	}
	if name == "Interplanar Beacon" {
		return Beacon, nil
	}
	if strings.Contains(rulesText, "gain 1 life") {
		return TapDual, nil
	}
	if strings.HasPrefix(name, "Temple of ") {
		return Scry, nil
	}
	if strings.HasSuffix(name, " Triome") {
		return TapTri, nil
	}
	if strings.Contains(rulesText, "pay 2 life") {
		return Shock, nil
	}
	if strings.Contains(rulesText, "control three or more") {
		return Adamant, nil
	}
	if colorlessLands[name] {
		return Colorless, nil
	}
	if name == "Lotus Field" {
		return Lotus, nil
	}
	if name == "Gateway Plaza" {
		return GatewayPlaza, nil
	}
	if filteringLands[name] {
		return Filtering, nil
	}
	if name == "Command Tower" {
		return CommandTower, nil
	}
	if name == "Tournament Grounds" {
		return TournamentGrounds, nil
	}
	if name == "Plaza of Harmony" {
		return PlazaOfHarmony, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLand, name)
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
