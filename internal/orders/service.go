package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/giftworks/holiday-shop-backend/internal/catalog"
	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
	pkgerrors "github.com/giftworks/holiday-shop-backend/pkg/errors"
	"github.com/giftworks/holiday-shop-backend/pkg/logger"
)

const unknownProductName = "Unknown Product"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the order submission operation.
type Service interface {
	Submit(ctx context.Context, input SubmitOrderInput) (*SubmitOrderResult, error)
}

type service struct {
	repo           Repository
	catalog        catalog.Repository
	tx             txRunner
	alloc          *NumberAllocator
	logg           *logger.Logger
	defaultCountry string
}

// ServiceParams bundles the submission service dependencies.
type ServiceParams struct {
	Repo           Repository
	Catalog        catalog.Repository
	Tx             txRunner
	Allocator      *NumberAllocator
	Logger         *logger.Logger
	DefaultCountry string
}

// NewService builds the submission service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Allocator == nil {
		return nil, fmt.Errorf("number allocator required")
	}
	country := params.DefaultCountry
	if country == "" {
		country = "USA"
	}
	return &service{
		repo:           params.Repo,
		catalog:        params.Catalog,
		tx:             params.Tx,
		alloc:          params.Allocator,
		logg:           params.Logger,
		defaultCountry: country,
	}, nil
}

// Submit validates the composed input, allocates an order number, and writes
// the order plus its items. The duplicate guard, order insert, and item batch
// run inside one transaction so a failed item write cannot leave an orphan
// order behind.
func (s *service) Submit(ctx context.Context, input SubmitOrderInput) (*SubmitOrderResult, error) {
	if err := validateSubmitInput(input); err != nil {
		return nil, err
	}

	email := NormalizeEmail(input.Email)
	var result *SubmitOrderResult

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "an order already exists for this email address")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "duplicate order check")
		}

		orderNumber := s.alloc.Next(ctx, repo.FindLatest)

		order := models.Order{
			ID:              uuid.New(),
			Email:           email,
			OrderNumber:     orderNumber,
			ShippingName:    input.Shipping.Name,
			ShippingAddress: input.Shipping.Address,
			ShippingCity:    input.Shipping.City,
			ShippingState:   input.Shipping.State,
			ShippingZip:     input.Shipping.Zip,
			ShippingCountry: input.Shipping.Country,
		}
		if input.Shipping.Address2 != "" {
			addr2 := input.Shipping.Address2
			order.ShippingAddress2 = &addr2
		}
		if order.ShippingCountry == "" {
			order.ShippingCountry = s.defaultCountry
		}

		if err := repo.CreateOrder(ctx, &order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert order")
		}

		name1, itemNumber1 := s.resolveProduct(ctx, input.Choice1.ProductID)
		name2, itemNumber2 := s.resolveProduct(ctx, input.Choice2.ProductID)

		items := buildChoice1Items(order.ID, *input.Choice1, name1, itemNumber1)
		items = append(items, buildChoice2Items(order.ID, *input.Choice2, name2, itemNumber2)...)

		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert order items")
		}

		result = &SubmitOrderResult{
			OrderID:     order.ID,
			OrderNumber: orderNumber,
			Success:     true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func validateSubmitInput(input SubmitOrderInput) error {
	if NormalizeEmail(input.Email) == "" || input.Shipping == nil || input.Choice1 == nil || input.Choice2 == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing required fields")
	}
	if input.Choice2.HasMultipleItems || input.Choice2.KitType != "" {
		if !input.Choice2.KitType.Known() {
			return pkgerrors.New(pkgerrors.CodeValidation, "unrecognized kit type").
				WithDetails(map[string]any{"kitType": string(input.Choice2.KitType)})
		}
	}
	return nil
}

// resolveProduct snapshots the product name and customer item number. A failed
// lookup degrades to a placeholder name instead of aborting the order.
func (s *service) resolveProduct(ctx context.Context, productID uuid.UUID) (string, *string) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		if s.logg != nil {
			ctx = s.logg.WithFields(ctx, map[string]any{"product_id": productID.String()})
			s.logg.Warn(ctx, "product lookup degraded to placeholder")
		}
		return unknownProductName, nil
	}
	return product.Name, product.CustomerItemNumber
}

func buildChoice1Items(orderID uuid.UUID, choice Choice1Input, name string, itemNumber *string) []models.OrderItem {
	productID := choice.ProductID
	return []models.OrderItem{{
		OrderID:            orderID,
		ProductID:          &productID,
		ProductName:        name,
		CustomerItemNumber: itemNumber,
		Color:              optional(choice.Color),
		Size:               optional(choice.Size),
	}}
}

// buildChoice2Items expands a kit selection into its two sub-items; a plain
// selection yields a single item like choice 1.
func buildChoice2Items(orderID uuid.UUID, choice Choice2Input, name string, itemNumber *string) []models.OrderItem {
	productID := choice.ProductID

	slots, ok := choice.KitType.Slots()
	if !ok {
		return []models.OrderItem{{
			OrderID:            orderID,
			ProductID:          &productID,
			ProductName:        name,
			CustomerItemNumber: itemNumber,
			Color:              optional(choice.Color),
			Size:               optional(choice.Size),
		}}
	}

	items := make([]models.OrderItem, 0, len(slots))
	for _, slot := range slots {
		color, size := slot.Resolve(choice)
		items = append(items, models.OrderItem{
			OrderID:            orderID,
			ProductID:          &productID,
			ProductName:        fmt.Sprintf("%s - %s", name, slot.Label),
			CustomerItemNumber: itemNumber,
			Color:              optional(color),
			Size:               optional(size),
		})
	}
	return items
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
