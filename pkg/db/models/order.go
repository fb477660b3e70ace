package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is created exactly once at submission time and never mutated. Email is
// stored normalized (lower-cased, trimmed); at most one order exists per email.
type Order struct {
	ID               uuid.UUID   `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email            string      `gorm:"column:email;not null;uniqueIndex"`
	OrderNumber      string      `gorm:"column:order_number;not null;uniqueIndex"`
	ShippingName     string      `gorm:"column:shipping_name;not null"`
	ShippingAddress  string      `gorm:"column:shipping_address;not null"`
	ShippingAddress2 *string     `gorm:"column:shipping_address2"`
	ShippingCity     string      `gorm:"column:shipping_city;not null"`
	ShippingState    string      `gorm:"column:shipping_state;not null"`
	ShippingZip      string      `gorm:"column:shipping_zip;not null"`
	ShippingCountry  string      `gorm:"column:shipping_country;not null;default:'USA'"`
	Items            []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time   `gorm:"column:created_at;autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}
