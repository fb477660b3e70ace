// Package deco maps a product/color combination to the decoration placement
// string fulfillment prints from. Rules are grouped per product family and
// data-driven so new families land as table rows, not new branches.
package deco

import "strings"

type matchKind int

const (
	matchExact matchKind = iota
	matchContains
)

type colorRule struct {
	colors []string
	deco   string
}

type familyRule struct {
	match string
	kind  matchKind
	// colors are checked in order; catchAll applies when the family matched
	// but no color rule did. Empty catchAll falls through to the product
	// default.
	colors   []colorRule
	catchAll string
}

var rules = []familyRule{
	{
		match: "Sweater Fleece",
		kind:  matchContains,
		colors: []colorRule{
			{colors: []string{"Black Heather"}, deco: "Stryker | Right Chest | PMS 421 Grey"},
			{colors: []string{"Medium Grey Heather"}, deco: "Stryker | Right Chest | Black"},
		},
	},
	{
		match: "Tile Mate",
		kind:  matchContains,
		colors: []colorRule{
			{colors: []string{"Black"}, deco: "Stryker | Right Corner | PMS 421 Grey"},
			{colors: []string{"White"}, deco: "Stryker | Right Corner | Black"},
		},
	},
	{
		match: "Unstoppable",
		kind:  matchContains,
		colors: []colorRule{
			{colors: []string{"Gray", "Grey"}, deco: "Stryker | Right Chest | Black"},
			{colors: []string{"Black"}, deco: "Stryker | Right Chest | PMS 421 Grey"},
		},
	},
	{
		match: "Adidas Men's Polo",
		kind:  matchExact,
		colors: []colorRule{
			{colors: []string{"Grey Three"}, deco: "Stryker | Left Chest | Black"},
		},
		catchAll: "Stryker | Left Chest | PMS 421 Grey",
	},
	{
		match: "Adidas Women's Polo",
		kind:  matchExact,
		colors: []colorRule{
			{colors: []string{"Grey Three"}, deco: "Stryker | Left Chest | Black"},
		},
		catchAll: "Stryker | Left Chest | PMS 421 Grey",
	},
	{
		match:    "New Era Cap",
		kind:     matchExact,
		catchAll: "Stryker | Center of Cap | PMS 421 Grey",
	},
	{
		match: "The North Face Beanie",
		kind:  matchExact,
		colors: []colorRule{
			{colors: []string{"TNF Yellow", "TNF Medium Grey Heather"}, deco: "Stryker | Center of Beanie Cuff | Black"},
		},
		catchAll: "Stryker | Center of Beanie Cuff | PMS 421 Grey",
	},
	{
		match:    "Apple AirTag",
		kind:     matchExact,
		catchAll: "Stryker | Center of AirTag | Black",
	},
	{
		match:    "Skull Candy Earbuds",
		kind:     matchExact,
		catchAll: "Stryker | Front of Case | PMS 421 Grey",
	},
	{
		match:    "Tech Organizer",
		kind:     matchExact,
		catchAll: "Stryker | Front Pocket | PMS 421 Grey",
	},
	{
		match:    "Power Bank",
		kind:     matchExact,
		catchAll: "Stryker | Front of Power Bank | PMS 421 Grey",
	},
}

// Classify resolves the decoration string for a product name and color. Total
// and deterministic: an unmatched combination returns the product's configured
// default, or "" when it has none.
func Classify(productName, color, productDefault string) string {
	for _, family := range rules {
		if !family.matches(productName) {
			continue
		}
		for _, rule := range family.colors {
			for _, c := range rule.colors {
				if c == color {
					return rule.deco
				}
			}
		}
		if family.catchAll != "" {
			return family.catchAll
		}
	}
	return productDefault
}

func (f familyRule) matches(name string) bool {
	switch f.kind {
	case matchExact:
		return name == f.match
	case matchContains:
		return strings.Contains(name, f.match)
	default:
		return false
	}
}
