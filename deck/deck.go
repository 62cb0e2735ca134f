package deck

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/msg555/mtg/cardstore"
	"github.com/msg555/mtg/cast"
	"github.com/msg555/mtg/land"
)

// ErrUnknownCard is returned by ParseDecklist when an entry's name is not
// present in the cardstore.Store it was parsed against.
var ErrUnknownCard = fmt.Errorf("deck: unknown card")

var entryPattern = regexp.MustCompile(`^(\d+) ([^()]*)( \([A-Z0-9]+\))?( \d+)?$`)

// Deck is a resolved decklist, split by section and by spell/land, since
// the castability core operates on those separately.
type Deck struct {
	Spells          []cast.Spell
	Lands           []land.Land
	SideboardSpells []cast.Spell
	SideboardLands  []land.Land
}

// ParseDecklist reads a decklist in the common text export format and
// resolves every entry against store.
func ParseDecklist(r io.Reader, store *cardstore.Store) (Deck, error) {
	var d Deck
	section := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "Deck" || line == "Sideboard" {
			section = line
			continue
		}

		match := entryPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		count, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		name := match[2]

		spell, lnd, isLand, ok := store.Lookup(name)
		if !ok {
			return Deck{}, fmt.Errorf("%w: %q", ErrUnknownCard, name)
		}

		for i := 0; i < count; i++ {
			if isLand {
				if section == "Sideboard" {
					d.SideboardLands = append(d.SideboardLands, lnd)
				} else {
					d.Lands = append(d.Lands, lnd)
				}
			} else {
				if section == "Sideboard" {
					d.SideboardSpells = append(d.SideboardSpells, spell)
				} else {
					d.Spells = append(d.Spells, spell)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Deck{}, fmt.Errorf("deck: %w", err)
	}
	return d, nil
}
