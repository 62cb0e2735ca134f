// Package mana parses Magic-style mana cost strings into the cost multiset
// used by the cast and colorset packages.
package mana
