package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/giftworks/holiday-shop-backend/internal/deco"
	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
)

const missingVariant = "N/A"

// DetailRow flattens one order item with its order's metadata. One row per
// item, no aggregation.
type DetailRow struct {
	OrderNumber        string    `json:"order_number"`
	Email              string    `json:"email"`
	ProductName        string    `json:"product_name"`
	CustomerItemNumber string    `json:"customer_item_number"`
	Color              string    `json:"color"`
	Size               string    `json:"size"`
	ShippingName       string    `json:"shipping_name"`
	ShippingAddress    string    `json:"shipping_address"`
	ShippingCity       string    `json:"shipping_city"`
	ShippingState      string    `json:"shipping_state"`
	ShippingZip        string    `json:"shipping_zip"`
	ShippingCountry    string    `json:"shipping_country"`
	OrderDate          time.Time `json:"order_date"`
}

// SummaryRow is one distribution group: how many of a given product variant
// were ordered, with the decoration the vendor should apply.
type SummaryRow struct {
	ProductName        string `json:"product_name"`
	CustomerItemNumber string `json:"customer_item_number"`
	Color              string `json:"color"`
	Size               string `json:"size"`
	Deco               string `json:"deco"`
	Quantity           int    `json:"quantity"`
}

// BuildDetailRows flattens orders into detail rows, preserving the input
// order: orders newest first, each order's items oldest first.
func BuildDetailRows(orderList []models.Order) []DetailRow {
	rows := make([]DetailRow, 0, len(orderList))
	for _, order := range orderList {
		address := order.ShippingAddress
		if order.ShippingAddress2 != nil && *order.ShippingAddress2 != "" {
			address += ", " + *order.ShippingAddress2
		}
		for _, item := range order.Items {
			rows = append(rows, DetailRow{
				OrderNumber:        order.OrderNumber,
				Email:              order.Email,
				ProductName:        item.ProductName,
				CustomerItemNumber: deref(item.CustomerItemNumber),
				Color:              deref(item.Color),
				Size:               deref(item.Size),
				ShippingName:       order.ShippingName,
				ShippingAddress:    address,
				ShippingCity:       order.ShippingCity,
				ShippingState:      order.ShippingState,
				ShippingZip:        order.ShippingZip,
				ShippingCountry:    order.ShippingCountry,
				OrderDate:          order.CreatedAt,
			})
		}
	}
	return rows
}

type groupKey struct {
	name       string
	itemNumber string
	color      string
	size       string
}

// BuildSummaryRows groups items by product variant and counts them. The
// decoration comes from the classifier, seeded with the group's first-seen
// item; defaultDeco supplies the catalog fallback for a product id and may be
// nil when no catalog is available.
func BuildSummaryRows(orderList []models.Order, defaultDeco func(uuid.UUID) string) []SummaryRow {
	groups := make(map[groupKey]*SummaryRow)
	for _, order := range orderList {
		for _, item := range order.Items {
			key := groupKey{
				name:       item.ProductName,
				itemNumber: deref(item.CustomerItemNumber),
				color:      orNA(item.Color),
				size:       orNA(item.Size),
			}
			if row, ok := groups[key]; ok {
				row.Quantity++
				continue
			}

			fallback := ""
			if defaultDeco != nil && item.ProductID != nil {
				fallback = defaultDeco(*item.ProductID)
			}
			groups[key] = &SummaryRow{
				ProductName:        key.name,
				CustomerItemNumber: key.itemNumber,
				Color:              key.color,
				Size:               key.size,
				Deco:               deco.Classify(item.ProductName, deref(item.Color), fallback),
				Quantity:           1,
			}
		}
	}

	rows := make([]SummaryRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := compareFold(rows[i].ProductName, rows[j].ProductName); c != 0 {
			return c < 0
		}
		if c := compareFold(rows[i].Color, rows[j].Color); c != 0 {
			return c < 0
		}
		return compareFold(rows[i].Size, rows[j].Size) < 0
	})
	return rows
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func orNA(value *string) string {
	if value == nil || *value == "" {
		return missingVariant
	}
	return *value
}
