// Package cardstore ingests MTGJSON-style card data into the castability
// core's Spell and Land records, grounded on original_source/mtg.py's
// read_set/read_format/load_standard_cards.
//
// Overview: a Store indexes cards by name as it consumes one or more JSON
// documents via LoadSet (a single-set export, keyed under a top-level
// "cards" array) or LoadFormat (a format's legal-card list, keyed by name).
// Later loads overwrite earlier ones by name, mirroring the dict.update
// semantics load_standard_cards relies on to let a format file's reprints
// supersede a single set's printing.
//
// Error handling: LoadSet/LoadFormat wrap json.Decoder errors and any
// per-card ingestion failure (an unrecognized land name, or a cost string
// with an unknown symbol) with the offending card's name.
package cardstore
