package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/giftworks/holiday-shop-backend/internal/catalog"
	"github.com/giftworks/holiday-shop-backend/internal/orders"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
	pkgerrors "github.com/giftworks/holiday-shop-backend/pkg/errors"
	"github.com/giftworks/holiday-shop-backend/pkg/pagination"
)

// Service serves the admin order views: the paginated JSON list, the
// distribution summary, and the spreadsheet export.
type Service interface {
	ListOrders(ctx context.Context, params pagination.Params) (*orders.OrderPage, error)
	Summary(ctx context.Context) ([]SummaryRow, error)
	Export(ctx context.Context) (string, []byte, error)
}

type service struct {
	repo    orders.Repository
	catalog catalog.Repository
	brand   string
	now     func() time.Time
}

// NewService builds the reporting service. Brand feeds the export filename.
func NewService(repo orders.Repository, cat catalog.Repository, brand string) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if brand == "" {
		return nil, fmt.Errorf("brand required")
	}
	return &service{repo: repo, catalog: cat, brand: brand, now: time.Now}, nil
}

func (s *service) ListOrders(ctx context.Context, params pagination.Params) (*orders.OrderPage, error) {
	page, err := s.repo.ListWithItems(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return page, nil
}

func (s *service) Summary(ctx context.Context) ([]SummaryRow, error) {
	all, err := s.repo.ListAllWithItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load orders for summary")
	}
	return BuildSummaryRows(all, s.defaultDecoLookup(ctx)), nil
}

func (s *service) Export(ctx context.Context) (string, []byte, error) {
	all, err := s.repo.ListAllWithItems(ctx)
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load orders for export")
	}

	detail := BuildDetailRows(all)
	summary := BuildSummaryRows(all, s.defaultDecoLookup(ctx))

	workbook, err := BuildWorkbook(detail, summary)
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build export workbook")
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode export workbook")
	}
	return Filename(s.brand, s.now()), buf.Bytes(), nil
}

// defaultDecoLookup loads the catalog once and resolves each product's stored
// deco fallback. A failed catalog read degrades to no fallback; the
// classifier's own table still applies.
func (s *service) defaultDecoLookup(ctx context.Context) func(uuid.UUID) string {
	defaults := make(map[uuid.UUID]string)
	for _, category := range []enums.ProductCategory{enums.ProductCategoryChoice1, enums.ProductCategoryChoice2} {
		products, err := s.catalog.ListByCategory(ctx, category)
		if err != nil {
			continue
		}
		for _, product := range products {
			if product.Deco != nil {
				defaults[product.ID] = *product.Deco
			}
		}
	}
	return func(id uuid.UUID) string {
		return defaults[id]
	}
}
