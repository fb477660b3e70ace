package orders

import (
	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
)

// KitType tags which pair of sub-items a multi-item product expands into.
type KitType string

const (
	KitPoloCap                KitType = "polo-cap"
	KitPoloBeanie             KitType = "polo-beanie"
	KitTileBeanie             KitType = "tile-beanie"
	KitTileCap                KitType = "tile-cap"
	KitAirtagCap              KitType = "airtag-cap"
	KitAirtagBeanie           KitType = "airtag-beanie"
	KitTileEarbuds            KitType = "tile-earbuds"
	KitTechOrganizerPowerBank KitType = "tech-organizer-power-bank"
)

// SlotSource names which Choice2Input field pair a kit slot reads.
type SlotSource int

const (
	SourcePolo SlotSource = iota
	SourceCap
	SourceBeanie
	SourceTile
	SourceAirtag
	SourceFixed
)

// SlotSpec describes one physical sub-item of a kit: the label appended to the
// captured product name and where its color/size come from. Defaults cover
// one-size and single-variant sub-items.
type SlotSpec struct {
	Label        string
	Source       SlotSource
	DefaultColor string
	DefaultSize  string
}

// kitRegistry is an open enumeration: tags are registered data, and new kits
// land as rows here. A multi-item selection carrying a tag that is not
// registered is rejected rather than guessed at.
var kitRegistry = map[KitType][2]SlotSpec{
	KitPoloCap: {
		{Label: "Polo", Source: SourcePolo},
		{Label: "Cap", Source: SourceCap},
	},
	KitPoloBeanie: {
		{Label: "Polo", Source: SourcePolo},
		{Label: "Beanie", Source: SourceBeanie, DefaultSize: "OSFA"},
	},
	KitTileBeanie: {
		{Label: "Tile", Source: SourceTile},
		{Label: "Beanie", Source: SourceBeanie, DefaultSize: "OSFA"},
	},
	KitTileCap: {
		{Label: "Tile", Source: SourceTile},
		{Label: "Cap", Source: SourceCap},
	},
	KitAirtagCap: {
		{Label: "AirTag", Source: SourceAirtag, DefaultColor: "White"},
		{Label: "Cap", Source: SourceCap},
	},
	KitAirtagBeanie: {
		{Label: "AirTag", Source: SourceAirtag, DefaultColor: "White"},
		{Label: "Beanie", Source: SourceBeanie, DefaultSize: "OSFA"},
	},
	KitTileEarbuds: {
		{Label: "Tile", Source: SourceTile},
		{Label: "Earbuds", Source: SourceFixed, DefaultColor: "White"},
	},
	KitTechOrganizerPowerBank: {
		{Label: "Tech Organizer", Source: SourcePolo, DefaultColor: "Black"},
		{Label: "Power Bank", Source: SourceCap, DefaultColor: "Black"},
	},
}

// Known reports whether the tag is registered.
func (k KitType) Known() bool {
	_, ok := kitRegistry[k]
	return ok
}

// Slots returns the two sub-item specs for a registered tag.
func (k KitType) Slots() ([2]SlotSpec, bool) {
	slots, ok := kitRegistry[k]
	return slots, ok
}

// Resolve reads the slot's color and size from the choice, falling back to the
// slot defaults when the wizard left them empty.
func (s SlotSpec) Resolve(choice Choice2Input) (color, size string) {
	switch s.Source {
	case SourcePolo:
		color, size = choice.PoloColor, choice.PoloSize
	case SourceCap:
		color, size = choice.CapColor, choice.CapSize
	case SourceBeanie:
		color, size = choice.BeanieColor, choice.BeanieSize
	case SourceTile:
		color, size = choice.TileColor, choice.TileSize
	case SourceAirtag:
		color, size = choice.AirtagColor, choice.AirtagSize
	case SourceFixed:
		// nothing to read; defaults below
	}
	if color == "" {
		color = s.DefaultColor
	}
	if size == "" {
		size = s.DefaultSize
	}
	return color, size
}

// Options returns the catalog option lists backing this slot, used by the
// wizard's per-slot validation.
func (s SlotSpec) Options(product *models.Product) (colors, sizes []string) {
	if product == nil {
		return nil, nil
	}
	switch s.Source {
	case SourcePolo:
		return product.PoloColors, product.PoloSizes
	case SourceCap:
		return product.CapColors, product.CapSizes
	case SourceBeanie:
		return product.BeanieColors, nil
	case SourceTile:
		return product.AvailableColors, product.AvailableSizes
	default:
		return nil, nil
	}
}
