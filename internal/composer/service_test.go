package composer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/giftworks/holiday-shop-backend/internal/orders"
	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
	pkgerrors "github.com/giftworks/holiday-shop-backend/pkg/errors"
)

type stubCatalog struct {
	products map[uuid.UUID]*models.Product
	calls    int
}

func (s *stubCatalog) ListByCategory(ctx context.Context, category enums.ProductCategory) ([]models.Product, error) {
	return nil, nil
}

func (s *stubCatalog) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	s.calls++
	product, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

type stubSubmitter struct {
	calls  int
	result *orders.SubmitOrderResult
	err    error
}

func (s *stubSubmitter) Submit(ctx context.Context, input orders.SubmitOrderInput) (*orders.SubmitOrderResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type wizardFixture struct {
	svc       Service
	store     *MemoryStore
	catalog   *stubCatalog
	submitter *stubSubmitter
	fleeceID  uuid.UUID
	kitID     uuid.UUID
}

func newWizardFixture(t *testing.T, allowed func(string) bool) *wizardFixture {
	t.Helper()

	fleeceID := uuid.New()
	kitID := uuid.New()
	cat := &stubCatalog{products: map[uuid.UUID]*models.Product{
		fleeceID: {
			ID:              fleeceID,
			Name:            "Sweater Fleece",
			Category:        enums.ProductCategoryChoice1,
			RequiresColor:   true,
			RequiresSize:    true,
			AvailableColors: []string{"Black Heather", "Medium Grey Heather"},
			AvailableSizes:  []string{"S", "M", "L"},
		},
		kitID: {
			ID:               kitID,
			Name:             "Kit 3",
			Category:         enums.ProductCategoryChoice2,
			HasMultipleItems: true,
			PoloColors:       []string{"Black", "Grey Three"},
			PoloSizes:        []string{"M", "L"},
			CapColors:        []string{"Black"},
			CapSizes:         []string{"OSFA"},
		},
	}}
	sub := &stubSubmitter{result: &orders.SubmitOrderResult{
		OrderID:     uuid.New(),
		OrderNumber: "syk-001",
		Success:     true,
	}}
	store := NewMemoryStore(time.Hour)

	svc, err := NewService(ServiceParams{
		Store:        store,
		Catalog:      cat,
		Orders:       sub,
		EmailAllowed: allowed,
	})
	require.NoError(t, err)

	return &wizardFixture{svc: svc, store: store, catalog: cat, submitter: sub, fleeceID: fleeceID, kitID: kitID}
}

func (f *wizardFixture) advanceToShipping(t *testing.T, sessionID string) {
	t.Helper()
	ctx := context.Background()

	_, err := f.svc.SetEmail(ctx, sessionID, "jordan@example.com")
	require.NoError(t, err)
	_, err = f.svc.SetChoice1(ctx, sessionID, orders.Choice1Input{
		ProductID: f.fleeceID, Color: "Black Heather", Size: "L",
	})
	require.NoError(t, err)
	_, err = f.svc.SetChoice2(ctx, sessionID, orders.Choice2Input{
		ProductID:        f.kitID,
		HasMultipleItems: true,
		KitType:          orders.KitPoloCap,
		PoloColor:        "Grey Three",
		PoloSize:         "M",
		CapColor:         "Black",
		CapSize:          "OSFA",
	})
	require.NoError(t, err)
}

func redirectOf(t *testing.T, err error) string {
	t.Helper()
	var appErr *pkgerrors.Error
	require.True(t, errors.As(err, &appErr))
	details, ok := appErr.Details().(map[string]any)
	require.True(t, ok)
	redirect, _ := details["redirect"].(string)
	return redirect
}

func TestResumeReturnsFreshStateForNewSession(t *testing.T) {
	f := newWizardFixture(t, nil)

	state, err := f.svc.Resume(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepEmail, state.CurrentStep())
}

func TestShippingWithoutChoice2RedirectsToStart(t *testing.T) {
	f := newWizardFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.SetEmail(ctx, "sess-1", "jordan@example.com")
	require.NoError(t, err)

	_, err = f.svc.SetShipping(ctx, "sess-1", orders.ShippingInput{
		Name: "Jordan Reyes", Address: "410 Birch Ln", City: "Kalamazoo", State: "MI", Zip: "49001",
	})
	require.Error(t, err)
	assert.Equal(t, string(StepEmail), redirectOf(t, err))
	assert.Zero(t, f.submitter.calls)
	assert.Zero(t, f.catalog.calls)
}

func TestChoice2WithoutChoice1RedirectsToStart(t *testing.T) {
	f := newWizardFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.SetEmail(ctx, "sess-1", "jordan@example.com")
	require.NoError(t, err)

	_, err = f.svc.SetChoice2(ctx, "sess-1", orders.Choice2Input{ProductID: f.kitID})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	assert.Equal(t, string(StepEmail), redirectOf(t, err))
	assert.Zero(t, f.catalog.calls)
}

func TestEmailGateRejectsUnlistedAddress(t *testing.T) {
	allowed := func(email string) bool { return email == "vip@example.com" }
	f := newWizardFixture(t, allowed)

	_, err := f.svc.SetEmail(context.Background(), "sess-1", "jordan@example.com")
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())

	_, err = f.svc.SetEmail(context.Background(), "sess-1", "VIP@example.com")
	assert.NoError(t, err)
}

func TestChangingEmailDropsSelections(t *testing.T) {
	f := newWizardFixture(t, nil)
	ctx := context.Background()
	f.advanceToShipping(t, "sess-1")

	state, err := f.svc.SetEmail(ctx, "sess-1", "other@example.com")
	require.NoError(t, err)
	assert.Nil(t, state.Choice1)
	assert.Nil(t, state.Choice2)
	assert.Equal(t, StepChoice1, state.CurrentStep())
}

func TestChoice1RejectsUnavailableColor(t *testing.T) {
	f := newWizardFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.SetEmail(ctx, "sess-1", "jordan@example.com")
	require.NoError(t, err)

	_, err = f.svc.SetChoice1(ctx, "sess-1", orders.Choice1Input{
		ProductID: f.fleeceID, Color: "Neon Pink", Size: "L",
	})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestChoice2RejectsWrongCategoryProduct(t *testing.T) {
	f := newWizardFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.SetEmail(ctx, "sess-1", "jordan@example.com")
	require.NoError(t, err)
	_, err = f.svc.SetChoice1(ctx, "sess-1", orders.Choice1Input{
		ProductID: f.fleeceID, Color: "Black Heather", Size: "L",
	})
	require.NoError(t, err)

	_, err = f.svc.SetChoice2(ctx, "sess-1", orders.Choice2Input{ProductID: f.fleeceID})
	require.Error(t, err)
}

func TestKitSlotRejectsUnavailablePoloSize(t *testing.T) {
	f := newWizardFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.SetEmail(ctx, "sess-1", "jordan@example.com")
	require.NoError(t, err)
	_, err = f.svc.SetChoice1(ctx, "sess-1", orders.Choice1Input{
		ProductID: f.fleeceID, Color: "Black Heather", Size: "L",
	})
	require.NoError(t, err)

	_, err = f.svc.SetChoice2(ctx, "sess-1", orders.Choice2Input{
		ProductID:        f.kitID,
		HasMultipleItems: true,
		KitType:          orders.KitPoloCap,
		PoloColor:        "Grey Three",
		PoloSize:         "XXXL",
		CapColor:         "Black",
		CapSize:          "OSFA",
	})
	require.Error(t, err)
}

func TestSubmitClearsSelectionsAndKeepsReceipt(t *testing.T) {
	f := newWizardFixture(t, nil)
	ctx := context.Background()
	f.advanceToShipping(t, "sess-1")

	_, err := f.svc.SetShipping(ctx, "sess-1", orders.ShippingInput{
		Name: "Jordan Reyes", Address: "410 Birch Ln", City: "Kalamazoo", State: "MI", Zip: "49001",
	})
	require.NoError(t, err)

	result, err := f.svc.Submit(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "syk-001", result.OrderNumber)
	assert.Equal(t, 1, f.submitter.calls)

	state, err := f.svc.Resume(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepDone, state.CurrentStep())
	assert.Nil(t, state.Choice1)
	require.NotNil(t, state.Receipt)
	assert.Equal(t, "syk-001", state.Receipt.OrderNumber)
}

func TestSubmitFailurePreservesSnapshot(t *testing.T) {
	f := newWizardFixture(t, nil)
	ctx := context.Background()
	f.advanceToShipping(t, "sess-1")

	_, err := f.svc.SetShipping(ctx, "sess-1", orders.ShippingInput{
		Name: "Jordan Reyes", Address: "410 Birch Ln", City: "Kalamazoo", State: "MI", Zip: "49001",
	})
	require.NoError(t, err)

	f.submitter.err = pkgerrors.New(pkgerrors.CodeConflict, "an order already exists for this email address")
	_, err = f.svc.Submit(ctx, "sess-1")
	require.Error(t, err)

	state, err := f.svc.Resume(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepReview, state.CurrentStep())
	require.NotNil(t, state.Shipping)
}

func TestSubmittedSessionRejectsFurtherSteps(t *testing.T) {
	f := newWizardFixture(t, nil)
	ctx := context.Background()
	f.advanceToShipping(t, "sess-1")

	_, err := f.svc.SetShipping(ctx, "sess-1", orders.ShippingInput{
		Name: "Jordan Reyes", Address: "410 Birch Ln", City: "Kalamazoo", State: "MI", Zip: "49001",
	})
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, "sess-1")
	require.NoError(t, err)

	_, err = f.svc.SetEmail(ctx, "sess-1", "jordan@example.com")
	require.Error(t, err)
	assert.Equal(t, string(StepDone), redirectOf(t, err))
}

func TestResetClearsSession(t *testing.T) {
	f := newWizardFixture(t, nil)
	ctx := context.Background()
	f.advanceToShipping(t, "sess-1")

	require.NoError(t, f.svc.Reset(ctx, "sess-1"))
	state, err := f.svc.Resume(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepEmail, state.CurrentStep())
}

func TestMemoryStoreExpiresSnapshots(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Save(context.Background(), &State{SessionID: "sess-1", Email: "a@b.com"}))
	current = current.Add(2 * time.Minute)

	_, err := store.Load(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
