package orders

import (
	"strings"

	"github.com/google/uuid"

	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
)

// ShippingInput carries the address captured on the shipping step. Only
// aggregate presence is re-checked at submission; field-level required-ness is
// the wizard's job.
type ShippingInput struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Zip      string `json:"zip" validate:"required"`
	Country  string `json:"country,omitempty"`
}

// Choice1Input is the first selection: always a single product.
type Choice1Input struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Color     string    `json:"color,omitempty"`
	Size      string    `json:"size,omitempty"`
}

// Choice2Input is the second selection. Single products use Color/Size; kit
// products set KitType plus the sub-item fields the kit's slots read.
type Choice2Input struct {
	ProductID        uuid.UUID `json:"productId" validate:"required"`
	HasMultipleItems bool      `json:"hasMultipleItems,omitempty"`
	KitType          KitType   `json:"kitType,omitempty"`

	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`

	PoloColor   string `json:"poloColor,omitempty"`
	PoloSize    string `json:"poloSize,omitempty"`
	CapColor    string `json:"capColor,omitempty"`
	CapSize     string `json:"capSize,omitempty"`
	BeanieColor string `json:"beanieColor,omitempty"`
	BeanieSize  string `json:"beanieSize,omitempty"`
	TileColor   string `json:"tileColor,omitempty"`
	TileSize    string `json:"tileSize,omitempty"`
	AirtagColor string `json:"airtagColor,omitempty"`
	AirtagSize  string `json:"airtagSize,omitempty"`
}

// SubmitOrderInput is the composed order sent as one request.
type SubmitOrderInput struct {
	Email    string         `json:"email" validate:"required,email"`
	Shipping *ShippingInput `json:"shipping" validate:"required"`
	Choice1  *Choice1Input  `json:"choice1" validate:"required"`
	Choice2  *Choice2Input  `json:"choice2" validate:"required"`
}

// SubmitOrderResult is returned for display and receipt storage.
type SubmitOrderResult struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Success     bool      `json:"success"`
}

// OrderPage is one cursor page of orders with their items preloaded.
type OrderPage struct {
	Orders     []models.Order `json:"orders"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// NormalizeEmail lower-cases and trims an address; the duplicate guard and the
// unique index both operate on this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
