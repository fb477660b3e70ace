package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/giftworks/holiday-shop-backend/pkg/enums"
)

// Product is a catalog entry. The catalog is maintained externally (migrations
// and the seed command); the storefront only ever reads it.
type Product struct {
	ID                 uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name               string                `gorm:"column:name;not null"`
	Description        *string               `gorm:"column:description"`
	Specs              *string               `gorm:"column:specs"`
	ThumbnailURL       *string               `gorm:"column:thumbnail_url"`
	Category           enums.ProductCategory `gorm:"column:category;not null"`
	RequiresColor      bool                  `gorm:"column:requires_color;not null;default:false"`
	RequiresSize       bool                  `gorm:"column:requires_size;not null;default:false"`
	AvailableColors    pq.StringArray        `gorm:"column:available_colors;type:text[]"`
	AvailableSizes     pq.StringArray        `gorm:"column:available_sizes;type:text[]"`
	CustomerItemNumber *string               `gorm:"column:customer_item_number"`
	Deco               *string               `gorm:"column:deco"`

	// Kit slots. A kit product bundles two physical sub-items; each slot keeps
	// its own option lists (polo/cap/beanie naming follows the merch catalog).
	HasMultipleItems bool           `gorm:"column:has_multiple_items;not null;default:false"`
	PoloColors       pq.StringArray `gorm:"column:polo_colors;type:text[]"`
	PoloSizes        pq.StringArray `gorm:"column:polo_sizes;type:text[]"`
	CapColors        pq.StringArray `gorm:"column:cap_colors;type:text[]"`
	CapSizes         pq.StringArray `gorm:"column:cap_sizes;type:text[]"`
	BeanieColors     pq.StringArray `gorm:"column:beanie_colors;type:text[]"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Product) TableName() string {
	return "products"
}
