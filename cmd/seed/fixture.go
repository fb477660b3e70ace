package main

import (
	"github.com/lib/pq"

	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
)

func ptr(v string) *string { return &v }

// catalogFixture mirrors the live holiday catalog: first-choice singles and
// second-choice kit bundles with per-slot option lists.
func catalogFixture() []models.Product {
	sizes := pq.StringArray{"S", "M", "L", "XL", "XXL"}

	return []models.Product{
		{
			Name:               "Sweater Fleece",
			Category:           enums.ProductCategoryChoice1,
			RequiresColor:      true,
			RequiresSize:       true,
			AvailableColors:    pq.StringArray{"Black Heather", "Medium Grey Heather"},
			AvailableSizes:     sizes,
			CustomerItemNumber: ptr("SF-100"),
		},
		{
			Name:               "Unstoppable Puffer Jacket",
			Category:           enums.ProductCategoryChoice1,
			RequiresColor:      true,
			RequiresSize:       true,
			AvailableColors:    pq.StringArray{"Black", "Gray"},
			AvailableSizes:     sizes,
			CustomerItemNumber: ptr("UP-110"),
		},
		{
			Name:               "OGIO Gear Mega Cube",
			Category:           enums.ProductCategoryChoice1,
			AvailableColors:    pq.StringArray{"Black"},
			CustomerItemNumber: ptr("OG-120"),
			Deco:               ptr("Stryker | Front Panel | PMS 421 Grey"),
		},
		{
			Name:               "OGIO Surge RSS Pack",
			Category:           enums.ProductCategoryChoice1,
			AvailableColors:    pq.StringArray{"Black"},
			CustomerItemNumber: ptr("OG-121"),
			Deco:               ptr("Stryker | Front Panel | PMS 421 Grey"),
		},
		{
			Name:               "Brooks Brothers Oxford Backpack",
			Category:           enums.ProductCategoryChoice1,
			AvailableColors:    pq.StringArray{"Navy"},
			CustomerItemNumber: ptr("BB-130"),
			Deco:               ptr("Stryker | Front Pocket | PMS 421 Grey"),
		},
		{
			Name:               "The North Face Fall Line Backpack",
			Category:           enums.ProductCategoryChoice1,
			RequiresColor:      true,
			AvailableColors:    pq.StringArray{"TNF Black", "Asphalt Grey"},
			CustomerItemNumber: ptr("NF-140"),
			Deco:               ptr("Stryker | Front Panel | PMS 421 Grey"),
		},
		{
			Name:               "Tile Mate 4 Pack",
			Category:           enums.ProductCategoryChoice1,
			RequiresColor:      true,
			AvailableColors:    pq.StringArray{"Black", "White"},
			CustomerItemNumber: ptr("TM-150"),
		},

		{
			Name:               "Kit 1 - Adidas Men's Polo & New Era Cap",
			Category:           enums.ProductCategoryChoice2,
			HasMultipleItems:   true,
			PoloColors:         pq.StringArray{"Black", "Grey Three"},
			PoloSizes:          sizes,
			CapColors:          pq.StringArray{"Black", "Graphite"},
			CapSizes:           pq.StringArray{"S/M", "M/L", "L/XL"},
			CustomerItemNumber: ptr("KT-1"),
		},
		{
			Name:               "Kit 2 - Adidas Women's Polo & The North Face Beanie",
			Category:           enums.ProductCategoryChoice2,
			HasMultipleItems:   true,
			PoloColors:         pq.StringArray{"Black", "Grey Three"},
			PoloSizes:          sizes,
			BeanieColors:       pq.StringArray{"TNF Black", "TNF Yellow", "TNF Medium Grey Heather"},
			CustomerItemNumber: ptr("KT-2"),
		},
		{
			Name:               "Kit 3 - Tile Mate 2 Pack & Skull Candy Earbuds",
			Category:           enums.ProductCategoryChoice2,
			HasMultipleItems:   true,
			AvailableColors:    pq.StringArray{"Black", "White"},
			CustomerItemNumber: ptr("KT-3"),
		},
		{
			Name:               "Kit 4 - Apple AirTag & New Era Cap",
			Category:           enums.ProductCategoryChoice2,
			HasMultipleItems:   true,
			CapColors:          pq.StringArray{"Black", "Graphite"},
			CapSizes:           pq.StringArray{"S/M", "M/L", "L/XL"},
			CustomerItemNumber: ptr("KT-4"),
		},
		{
			Name:               "Kit 5 - Tech Organizer & Power Bank",
			Category:           enums.ProductCategoryChoice2,
			HasMultipleItems:   true,
			PoloColors:         pq.StringArray{"Black"},
			CapColors:          pq.StringArray{"Black"},
			CustomerItemNumber: ptr("KT-5"),
		},
		{
			Name:               "Tile Mate 2 Pack",
			Category:           enums.ProductCategoryChoice2,
			RequiresColor:      true,
			AvailableColors:    pq.StringArray{"Black", "White"},
			CustomerItemNumber: ptr("TM-151"),
		},
	}
}
