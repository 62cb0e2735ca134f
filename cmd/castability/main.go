// Command castability decides whether a named spell can be cast from the
// lands in a decklist.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/msg555/mtg/cardstore"
	"github.com/msg555/mtg/cast"
	"github.com/msg555/mtg/deck"
	"github.com/msg555/mtg/internal/tracelog"
)

func main() {
	cardsPath := flag.String("cards", "", "MTGJSON single-set export (cards array)")
	formatPath := flag.String("format", "", "MTGJSON format card list, keyed by name")
	decklistPath := flag.String("decklist", "", "decklist text file (required)")
	spellName := flag.String("spell", "", "name of the spell to test (required)")
	x := flag.Int("x", 0, "value to substitute for X in the spell's cost")
	useSideboard := flag.Bool("sideboard", false, "include sideboard lands in the pool")
	logLevel := flag.String("log", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	flag.Parse()

	tracelog.SetLevel(tracelog.ParseLevel(*logLevel))

	if *decklistPath == "" || *spellName == "" {
		fmt.Fprintln(os.Stderr, "usage: castability -decklist FILE -spell NAME [-cards FILE] [-format FILE] [-x N]")
		os.Exit(2)
	}

	store := cardstore.New()
	if *cardsPath != "" {
		if err := loadInto(store.LoadSet, *cardsPath); err != nil {
			tracelog.Errorf("loading %s: %v", *cardsPath, err)
			os.Exit(1)
		}
		tracelog.Infof("loaded card set from %s", *cardsPath)
	}
	if *formatPath != "" {
		if err := loadInto(store.LoadFormat, *formatPath); err != nil {
			tracelog.Errorf("loading %s: %v", *formatPath, err)
			os.Exit(1)
		}
		tracelog.Infof("loaded card format list from %s", *formatPath)
	}

	f, err := os.Open(*decklistPath)
	if err != nil {
		tracelog.Errorf("opening %s: %v", *decklistPath, err)
		os.Exit(1)
	}
	defer f.Close()

	d, err := deck.ParseDecklist(f, store)
	if err != nil {
		tracelog.Errorf("parsing decklist: %v", err)
		os.Exit(1)
	}
	tracelog.Infof("parsed decklist: %d lands, %d spells, %d sideboard lands", len(d.Lands), len(d.Spells), len(d.SideboardLands))

	spell, ok := store.Spell(*spellName)
	if !ok {
		tracelog.Errorf("spell %q not found in loaded card data", *spellName)
		os.Exit(1)
	}

	lands := d.Lands
	if *useSideboard {
		lands = append(lands, d.SideboardLands...)
		tracelog.Debugf("sideboard lands included, pool now %d lands", len(lands))
	}

	ok, err = cast.CanCast(spell, lands, *x)
	if err != nil {
		tracelog.Errorf("deciding castability: %v", err)
		os.Exit(1)
	}
	if ok {
		fmt.Printf("%s: castable with %d lands (x=%d)\n", spell.Name, len(lands), *x)
	} else {
		fmt.Printf("%s: not castable with %d lands (x=%d)\n", spell.Name, len(lands), *x)
		os.Exit(1)
	}
}

func loadInto(load func(io.Reader) error, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return load(f)
}
