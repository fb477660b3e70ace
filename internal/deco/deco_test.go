package deco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFamilyRules(t *testing.T) {
	tests := []struct {
		name    string
		product string
		color   string
		deflt   string
		want    string
	}{
		{
			name:    "sweater fleece black heather",
			product: "Port Authority Sweater Fleece Jacket",
			color:   "Black Heather",
			want:    "Stryker | Right Chest | PMS 421 Grey",
		},
		{
			name:    "sweater fleece medium grey heather",
			product: "Port Authority Sweater Fleece Jacket",
			color:   "Medium Grey Heather",
			want:    "Stryker | Right Chest | Black",
		},
		{
			name:    "tile mate white",
			product: "Tile Mate 2 Pack",
			color:   "White",
			want:    "Stryker | Right Corner | Black",
		},
		{
			name:    "unstoppable grey spelling variant",
			product: "Under Armour Unstoppable Jacket",
			color:   "Grey",
			want:    "Stryker | Right Chest | Black",
		},
		{
			name:    "adidas mens polo grey three",
			product: "Adidas Men's Polo",
			color:   "Grey Three",
			want:    "Stryker | Left Chest | Black",
		},
		{
			name:    "adidas womens polo catch-all",
			product: "Adidas Women's Polo",
			color:   "Black",
			want:    "Stryker | Left Chest | PMS 421 Grey",
		},
		{
			name:    "north face beanie tnf yellow",
			product: "The North Face Beanie",
			color:   "TNF Yellow",
			want:    "Stryker | Center of Beanie Cuff | Black",
		},
		{
			name:    "airtag ignores color",
			product: "Apple AirTag",
			color:   "White",
			want:    "Stryker | Center of AirTag | Black",
		},
		{
			name:    "power bank",
			product: "Power Bank",
			color:   "",
			want:    "Stryker | Front of Power Bank | PMS 421 Grey",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.product, tt.color, tt.deflt))
		})
	}
}

func TestClassifyNewEraCapFixedForEveryColor(t *testing.T) {
	for _, color := range []string{"Black", "Grey", "Navy", "", "Anything"} {
		assert.Equal(t, "Stryker | Center of Cap | PMS 421 Grey", Classify("New Era Cap", color, "fallback"))
	}
}

func TestClassifyFallsThroughToDefault(t *testing.T) {
	assert.Equal(t, "Default Deco", Classify("OGIO Gear Mega Cube", "Black", "Default Deco"))
	assert.Equal(t, "", Classify("OGIO Gear Mega Cube", "Black", ""))

	// Family matched, no color rule, no catch-all: product default survives.
	assert.Equal(t, "Tag Deco", Classify("Tile Mate 4 Pack", "Blue", "Tag Deco"))
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify("Adidas Men's Polo", "Grey Three", "")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify("Adidas Men's Polo", "Grey Three", ""))
	}
}
