// Package land defines the land-type enumeration and per-turn color-output
// semantics the castability core relies on, along with a name/rules-text
// categorizer grounded on original_source/mtg.py's _categorize_land.
package land
