package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem captures the denormalized snapshot of a selected product. The name
// and customer item number are copied at submission time so later catalog
// edits never rewrite order history. Kit selections expand into two items with
// a sub-item label appended to the product name.
type OrderItem struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID            uuid.UUID  `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID          *uuid.UUID `gorm:"column:product_id;type:uuid"`
	ProductName        string     `gorm:"column:product_name;not null"`
	CustomerItemNumber *string    `gorm:"column:customer_item_number"`
	Color              *string    `gorm:"column:color"`
	Size               *string    `gorm:"column:size"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
