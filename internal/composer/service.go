package composer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/giftworks/holiday-shop-backend/internal/catalog"
	"github.com/giftworks/holiday-shop-backend/internal/orders"
	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
	pkgerrors "github.com/giftworks/holiday-shop-backend/pkg/errors"
	"github.com/giftworks/holiday-shop-backend/pkg/logger"
)

// Service drives the order wizard. Each step validates its own payload,
// captures it into the session snapshot, and only the final Submit call
// touches the order store.
type Service interface {
	Resume(ctx context.Context, sessionID string) (*State, error)
	SetEmail(ctx context.Context, sessionID, email string) (*State, error)
	SetChoice1(ctx context.Context, sessionID string, input orders.Choice1Input) (*State, error)
	SetChoice2(ctx context.Context, sessionID string, input orders.Choice2Input) (*State, error)
	SetShipping(ctx context.Context, sessionID string, input orders.ShippingInput) (*State, error)
	Submit(ctx context.Context, sessionID string) (*orders.SubmitOrderResult, error)
	Reset(ctx context.Context, sessionID string) error
}

type submitter interface {
	Submit(ctx context.Context, input orders.SubmitOrderInput) (*orders.SubmitOrderResult, error)
}

type service struct {
	store        SnapshotStore
	catalog      catalog.Repository
	orders       submitter
	emailAllowed func(string) bool
	logg         *logger.Logger
}

// ServiceParams bundles the wizard service dependencies. EmailAllowed may be
// nil, in which case every address is eligible.
type ServiceParams struct {
	Store        SnapshotStore
	Catalog      catalog.Repository
	Orders       submitter
	EmailAllowed func(string) bool
	Logger       *logger.Logger
}

// NewService builds the wizard service.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("orders service required")
	}
	allowed := params.EmailAllowed
	if allowed == nil {
		allowed = func(string) bool { return true }
	}
	return &service{
		store:        params.Store,
		catalog:      params.Catalog,
		orders:       params.Orders,
		emailAllowed: allowed,
		logg:         params.Logger,
	}, nil
}

// Resume returns the session snapshot, or a fresh one when none exists.
func (s *service) Resume(ctx context.Context, sessionID string) (*State, error) {
	state, err := s.store.Load(ctx, sessionID)
	if errors.Is(err, ErrSnapshotNotFound) {
		return &State{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wizard session")
	}
	return state, nil
}

func (s *service) SetEmail(ctx context.Context, sessionID, email string) (*State, error) {
	state, err := s.Resume(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.guard(state, StepEmail); err != nil {
		return nil, err
	}

	normalized := orders.NormalizeEmail(email)
	if normalized == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if !s.emailAllowed(normalized) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "this email address is not eligible")
	}

	// Changing the email restarts the selections made under the old one.
	if state.Email != "" && state.Email != normalized {
		state.Choice1 = nil
		state.Choice2 = nil
		state.Shipping = nil
	}
	state.Email = normalized
	return s.save(ctx, state)
}

func (s *service) SetChoice1(ctx context.Context, sessionID string, input orders.Choice1Input) (*State, error) {
	state, err := s.Resume(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.guard(state, StepChoice1); err != nil {
		return nil, err
	}

	product, err := s.loadProduct(ctx, input.ProductID, enums.ProductCategoryChoice1)
	if err != nil {
		return nil, err
	}
	if err := validateVariant(product, input.Color, input.Size); err != nil {
		return nil, err
	}

	state.Choice1 = &input
	return s.save(ctx, state)
}

func (s *service) SetChoice2(ctx context.Context, sessionID string, input orders.Choice2Input) (*State, error) {
	state, err := s.Resume(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.guard(state, StepChoice2); err != nil {
		return nil, err
	}

	product, err := s.loadProduct(ctx, input.ProductID, enums.ProductCategoryChoice2)
	if err != nil {
		return nil, err
	}

	if product.HasMultipleItems {
		if err := validateKit(product, input); err != nil {
			return nil, err
		}
	} else if err := validateVariant(product, input.Color, input.Size); err != nil {
		return nil, err
	}

	state.Choice2 = &input
	return s.save(ctx, state)
}

func (s *service) SetShipping(ctx context.Context, sessionID string, input orders.ShippingInput) (*State, error) {
	state, err := s.Resume(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.guard(state, StepShipping); err != nil {
		return nil, err
	}

	state.Shipping = &input
	return s.save(ctx, state)
}

// Submit composes the snapshot into one request and hands it to the order
// service. On success the selections are dropped and only the receipt is kept
// for the confirmation view; on failure the snapshot survives untouched so
// the shopper can retry.
func (s *service) Submit(ctx context.Context, sessionID string) (*orders.SubmitOrderResult, error) {
	state, err := s.Resume(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.guard(state, StepReview); err != nil {
		return nil, err
	}

	result, err := s.orders.Submit(ctx, orders.SubmitOrderInput{
		Email:    state.Email,
		Shipping: state.Shipping,
		Choice1:  state.Choice1,
		Choice2:  state.Choice2,
	})
	if err != nil {
		return nil, err
	}

	state.Choice1 = nil
	state.Choice2 = nil
	state.Shipping = nil
	state.Receipt = result
	if _, err := s.save(ctx, state); err != nil && s.logg != nil {
		ctx = s.logg.WithOrderNumber(ctx, result.OrderNumber)
		s.logg.Warn(ctx, "order submitted but receipt snapshot not saved")
	}
	return result, nil
}

func (s *service) Reset(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear wizard session")
	}
	return nil
}

func (s *service) save(ctx context.Context, state *State) (*State, error) {
	state.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, state); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save wizard session")
	}
	return state, nil
}

// guard rejects steps entered out of order. The redirect detail sends the
// shopper back to the start of the wizard (or to the done step when the
// session already submitted); no order data is read or written on this path.
func (s *service) guard(state *State, step Step) error {
	ok, redirect := state.allows(step)
	if ok {
		return nil
	}
	if redirect == StepDone {
		return pkgerrors.New(pkgerrors.CodeConflict, "this session has already submitted an order").
			WithDetails(map[string]any{"redirect": string(StepDone)})
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "wizard step entered out of order").
		WithDetails(map[string]any{"redirect": string(redirect)})
}

func (s *service) loadProduct(ctx context.Context, id uuid.UUID, category enums.ProductCategory) (*models.Product, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if product.Category != category {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product does not belong to this step")
	}
	return product, nil
}

// validateVariant checks the picked color/size against the product's option
// lists when the product requires them.
func validateVariant(product *models.Product, color, size string) error {
	if product.RequiresColor && !optionAllowed(color, product.AvailableColors) {
		return pkgerrors.New(pkgerrors.CodeValidation, "color is not available for this product").
			WithDetails(map[string]any{"color": color})
	}
	if product.RequiresSize && !optionAllowed(size, product.AvailableSizes) {
		return pkgerrors.New(pkgerrors.CodeValidation, "size is not available for this product").
			WithDetails(map[string]any{"size": size})
	}
	return nil
}

// validateKit checks the kit tag and each slot's selection against the slot's
// own option lists.
func validateKit(product *models.Product, input orders.Choice2Input) error {
	if !input.KitType.Known() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unrecognized kit type").
			WithDetails(map[string]any{"kitType": string(input.KitType)})
	}

	slots, _ := input.KitType.Slots()
	for _, slot := range slots {
		color, size := slot.Resolve(input)
		colors, sizes := slot.Options(product)
		if len(colors) > 0 && !optionAllowed(color, colors) {
			return pkgerrors.New(pkgerrors.CodeValidation, "color is not available for this kit item").
				WithDetails(map[string]any{"item": slot.Label, "color": color})
		}
		if len(sizes) > 0 && !optionAllowed(size, sizes) {
			return pkgerrors.New(pkgerrors.CodeValidation, "size is not available for this kit item").
				WithDetails(map[string]any{"item": slot.Label, "size": size})
		}
	}
	return nil
}

func optionAllowed(value string, options []string) bool {
	if value == "" {
		return false
	}
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
