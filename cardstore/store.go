package cardstore

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/msg555/mtg/cast"
	"github.com/msg555/mtg/colorset"
	"github.com/msg555/mtg/land"
	"github.com/msg555/mtg/mana"
)

// Store indexes cards by name, split into castable spells and lands as
// they're ingested.
type Store struct {
	spells map[string]cast.Spell
	lands  map[string]land.Land
}

// New constructs an empty Store.
func New() *Store {
	return &Store{
		spells: map[string]cast.Spell{},
		lands:  map[string]land.Land{},
	}
}

// LoadSet ingests a single-set MTGJSON export (a top-level "cards" array).
func (s *Store) LoadSet(r io.Reader) error {
	var file setFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return fmt.Errorf("cardstore: decode set: %w", err)
	}
	for _, rec := range file.Cards {
		if err := s.ingest(rec); err != nil {
			return err
		}
	}
	return nil
}

// LoadFormat ingests a format's card list, keyed by name at the top level.
func (s *Store) LoadFormat(r io.Reader) error {
	var records map[string]cardRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return fmt.Errorf("cardstore: decode format: %w", err)
	}
	for _, rec := range records {
		if err := s.ingest(rec); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ingest(rec cardRecord) error {
	if containsString(rec.Types, "Land") {
		typeTag, err := land.Categorize(rec.Name, rec.Text, rec.Supertypes)
		if err != nil {
			return fmt.Errorf("cardstore: %s: %w", rec.Name, err)
		}
		s.lands[rec.Name] = land.NewLand(rec.Name, typeTag, parseColorSet(rec.ColorIdentity))
		return nil
	}

	cost, err := mana.ParseCost(rec.ManaCost)
	if err != nil {
		return fmt.Errorf("cardstore: %s: %w", rec.Name, err)
	}
	s.spells[rec.Name] = cast.NewSpell(rec.Name, cost, rec.Types, rec.Subtypes)
	return nil
}

// Spell looks up an ingested non-land card by name.
func (s *Store) Spell(name string) (cast.Spell, bool) {
	v, ok := s.spells[name]
	return v, ok
}

// Land looks up an ingested land card by name.
func (s *Store) Land(name string) (land.Land, bool) {
	v, ok := s.lands[name]
	return v, ok
}

// Lookup resolves name against either index, reporting which one matched.
// Exactly one of the returned Spell/Land values is meaningful, indicated
// by isLand; ok is false if name was never ingested.
func (s *Store) Lookup(name string) (spell cast.Spell, lnd land.Land, isLand bool, ok bool) {
	if lnd, ok := s.lands[name]; ok {
		return cast.Spell{}, lnd, true, true
	}
	if spell, ok := s.spells[name]; ok {
		return spell, land.Land{}, false, true
	}
	return cast.Spell{}, land.Land{}, false, false
}

var colorLetters = map[string]colorset.Set{
	"W": colorset.White,
	"U": colorset.Blue,
	"B": colorset.Black,
	"R": colorset.Red,
	"G": colorset.Green,
}

func parseColorSet(letters []string) colorset.Set {
	var s colorset.Set
	for _, l := range letters {
		s = s.Union(colorLetters[l])
	}
	return s
}
