package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
	apperrors "github.com/giftworks/holiday-shop-backend/pkg/errors"
)

type stubCatalog struct {
	products map[uuid.UUID]*models.Product
}

func (s *stubCatalog) ListByCategory(ctx context.Context, category enums.ProductCategory) ([]models.Product, error) {
	return nil, nil
}

func (s *stubCatalog) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

type gormTxRunner struct {
	db *gorm.DB
}

func (r *gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func newTestService(t *testing.T, db *gorm.DB, cat *stubCatalog, policy enums.NumberPolicy) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{
		Repo:           NewRepository(db),
		Catalog:        cat,
		Tx:             &gormTxRunner{db: db},
		Allocator:      NewNumberAllocator(policy, "STRYKER", "syk"),
		DefaultCountry: "USA",
	})
	require.NoError(t, err)
	return svc
}

func itemNumber(v string) *string { return &v }

func fixtureCatalog() (*stubCatalog, uuid.UUID, uuid.UUID) {
	fleeceID := uuid.New()
	kitID := uuid.New()
	return &stubCatalog{products: map[uuid.UUID]*models.Product{
		fleeceID: {
			ID:                 fleeceID,
			Name:               "Sweater Fleece",
			Category:           enums.ProductCategoryChoice1,
			CustomerItemNumber: itemNumber("SF-100"),
		},
		kitID: {
			ID:                 kitID,
			Name:               "Kit 3",
			Category:           enums.ProductCategoryChoice2,
			HasMultipleItems:   true,
			CustomerItemNumber: itemNumber("KT-3"),
		},
	}}, fleeceID, kitID
}

func validInput(fleeceID, kitID uuid.UUID) SubmitOrderInput {
	return SubmitOrderInput{
		Email: "  Jordan@Example.COM ",
		Shipping: &ShippingInput{
			Name:    "Jordan Reyes",
			Address: "410 Birch Ln",
			City:    "Kalamazoo",
			State:   "MI",
			Zip:     "49001",
		},
		Choice1: &Choice1Input{
			ProductID: fleeceID,
			Color:     "Black Heather",
			Size:      "L",
		},
		Choice2: &Choice2Input{
			ProductID:        kitID,
			HasMultipleItems: true,
			KitType:          KitPoloCap,
			PoloColor:        "Grey Three",
			PoloSize:         "M",
			CapColor:         "Black",
			CapSize:          "OSFA",
		},
	}
}

func TestSubmitCreatesOrderAndItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	cat, fleeceID, kitID := fixtureCatalog()
	svc := newTestService(t, db, cat, enums.NumberPolicySequential)

	result, err := svc.Submit(context.Background(), validInput(fleeceID, kitID))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "syk-001", result.OrderNumber)

	repo := NewRepository(db)
	order, err := repo.FindByEmail(context.Background(), "jordan@example.com")
	require.NoError(t, err)
	assert.Equal(t, result.OrderID, order.ID)
	assert.Equal(t, "USA", order.ShippingCountry)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Order("created_at ASC, product_name ASC").Find(&items).Error)
	require.Len(t, items, 3)

	names := []string{items[0].ProductName, items[1].ProductName, items[2].ProductName}
	assert.Contains(t, names, "Sweater Fleece")
	assert.Contains(t, names, "Kit 3 - Polo")
	assert.Contains(t, names, "Kit 3 - Cap")

	for _, item := range items {
		if item.ProductName == "Kit 3 - Polo" {
			require.NotNil(t, item.Color)
			assert.Equal(t, "Grey Three", *item.Color)
			require.NotNil(t, item.CustomerItemNumber)
			assert.Equal(t, "KT-3", *item.CustomerItemNumber)
		}
	}
}

func TestSubmitSequentialNumbersAdvance(t *testing.T) {
	db := setupOrdersTestDB(t)
	cat, fleeceID, kitID := fixtureCatalog()
	svc := newTestService(t, db, cat, enums.NumberPolicySequential)

	first, err := svc.Submit(context.Background(), validInput(fleeceID, kitID))
	require.NoError(t, err)

	second := validInput(fleeceID, kitID)
	second.Email = "casey@example.com"
	result, err := svc.Submit(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, "syk-001", first.OrderNumber)
	assert.Equal(t, "syk-002", result.OrderNumber)
}

func TestSubmitRejectsDuplicateEmail(t *testing.T) {
	db := setupOrdersTestDB(t)
	cat, fleeceID, kitID := fixtureCatalog()
	svc := newTestService(t, db, cat, enums.NumberPolicySequential)

	_, err := svc.Submit(context.Background(), validInput(fleeceID, kitID))
	require.NoError(t, err)

	dup := validInput(fleeceID, kitID)
	dup.Email = "JORDAN@example.com"
	_, err = svc.Submit(context.Background(), dup)
	require.Error(t, err)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeConflict, appErr.Code())
}

func TestSubmitRejectsMissingSections(t *testing.T) {
	db := setupOrdersTestDB(t)
	cat, fleeceID, kitID := fixtureCatalog()
	svc := newTestService(t, db, cat, enums.NumberPolicySequential)

	cases := map[string]func(*SubmitOrderInput){
		"email":    func(in *SubmitOrderInput) { in.Email = "   " },
		"shipping": func(in *SubmitOrderInput) { in.Shipping = nil },
		"choice1":  func(in *SubmitOrderInput) { in.Choice1 = nil },
		"choice2":  func(in *SubmitOrderInput) { in.Choice2 = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validInput(fleeceID, kitID)
			mutate(&input)
			_, err := svc.Submit(context.Background(), input)
			require.Error(t, err)

			var appErr *apperrors.Error
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperrors.CodeValidation, appErr.Code())
		})
	}
}

func TestSubmitRejectsUnknownKitTag(t *testing.T) {
	db := setupOrdersTestDB(t)
	cat, fleeceID, kitID := fixtureCatalog()
	svc := newTestService(t, db, cat, enums.NumberPolicySequential)

	input := validInput(fleeceID, kitID)
	input.Choice2.KitType = "polo-scarf"
	_, err := svc.Submit(context.Background(), input)
	require.Error(t, err)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidation, appErr.Code())
}

func TestSubmitDegradesMissingProductToPlaceholder(t *testing.T) {
	db := setupOrdersTestDB(t)
	cat, fleeceID, kitID := fixtureCatalog()
	svc := newTestService(t, db, cat, enums.NumberPolicySequential)

	input := validInput(fleeceID, kitID)
	input.Choice1.ProductID = uuid.New()
	result, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", result.OrderID).Find(&items).Error)

	var found bool
	for _, item := range items {
		if item.ProductName == "Unknown Product" {
			found = true
			assert.Nil(t, item.CustomerItemNumber)
		}
	}
	assert.True(t, found)
}

func TestSubmitFailedItemWriteLeavesNoOrder(t *testing.T) {
	db := setupOrdersTestDB(t)
	cat, fleeceID, kitID := fixtureCatalog()

	// Drop the items table after setup so the item insert fails inside the
	// transaction; the order insert must roll back with it.
	require.NoError(t, db.Exec(`DROP TABLE order_items`).Error)

	svc := newTestService(t, db, cat, enums.NumberPolicySequential)
	_, err := svc.Submit(context.Background(), validInput(fleeceID, kitID))
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Table("orders").Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitPlainChoice2ProducesSingleItem(t *testing.T) {
	db := setupOrdersTestDB(t)
	tileID := uuid.New()
	cat := &stubCatalog{products: map[uuid.UUID]*models.Product{
		tileID: {ID: tileID, Name: "Tile Mate", Category: enums.ProductCategoryChoice2},
	}}
	fleeceCat, fleeceID, _ := fixtureCatalog()
	cat.products[fleeceID] = fleeceCat.products[fleeceID]

	svc := newTestService(t, db, cat, enums.NumberPolicySequential)

	input := validInput(fleeceID, tileID)
	input.Choice2 = &Choice2Input{ProductID: tileID, Color: "Black"}
	result, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", result.OrderID).Find(&items).Error)
	require.Len(t, items, 2)
}

func TestSubmitRandomPolicyFormat(t *testing.T) {
	db := setupOrdersTestDB(t)
	cat, fleeceID, kitID := fixtureCatalog()
	svc := newTestService(t, db, cat, enums.NumberPolicyRandom)

	result, err := svc.Submit(context.Background(), validInput(fleeceID, kitID))
	require.NoError(t, err)
	assert.Regexp(t, `^STRYKER-[0-9A-Z]+-[0-9A-Z]{4}$`, result.OrderNumber)
}
