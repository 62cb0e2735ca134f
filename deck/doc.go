// Package deck parses a plain-text decklist into resolved Spell and Land
// records, grounded on original_source/mtg.py's Decklist class.
//
// Overview: a decklist is a sequence of lines, each either a section
// header ("Deck" or "Sideboard") or an entry of the form
// "<count> <name> (<SET>) <number>". Each entry is resolved by name
// against a cardstore.Store; entries before any header belong to the main
// deck, matching the original's blank deck_section default.
//
// Error handling: ParseDecklist returns ErrUnknownCard, naming the card,
// the first time an entry's name is not found in store.
package deck
