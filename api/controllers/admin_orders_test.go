package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	internalorders "github.com/giftworks/holiday-shop-backend/internal/orders"
	"github.com/giftworks/holiday-shop-backend/internal/reporting"
	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
	"github.com/giftworks/holiday-shop-backend/pkg/pagination"
)

type stubReporting struct {
	listFn    func(ctx context.Context, params pagination.Params) (*internalorders.OrderPage, error)
	summaryFn func(ctx context.Context) ([]reporting.SummaryRow, error)
	exportFn  func(ctx context.Context) (string, []byte, error)
}

func (s stubReporting) ListOrders(ctx context.Context, params pagination.Params) (*internalorders.OrderPage, error) {
	if s.listFn != nil {
		return s.listFn(ctx, params)
	}
	return &internalorders.OrderPage{}, nil
}

func (s stubReporting) Summary(ctx context.Context) ([]reporting.SummaryRow, error) {
	if s.summaryFn != nil {
		return s.summaryFn(ctx)
	}
	return nil, nil
}

func (s stubReporting) Export(ctx context.Context) (string, []byte, error) {
	if s.exportFn != nil {
		return s.exportFn(ctx)
	}
	return "", nil, nil
}

func TestAdminListOrdersPassesLimit(t *testing.T) {
	orderID := uuid.New()
	expected := &internalorders.OrderPage{
		Orders: []models.Order{{ID: orderID, OrderNumber: "syk-001", Email: "jordan@example.com"}},
	}

	svc := stubReporting{
		listFn: func(ctx context.Context, params pagination.Params) (*internalorders.OrderPage, error) {
			if params.Limit != 5 {
				t.Fatalf("unexpected limit %d", params.Limit)
			}
			return expected, nil
		},
	}

	handler := AdminListOrders(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/?limit=5", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data internalorders.OrderPage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Orders) != 1 || envelope.Data.Orders[0].ID != orderID {
		t.Fatalf("unexpected payload %v", envelope.Data)
	}
}

func TestAdminListOrdersRejectsBadLimit(t *testing.T) {
	handler := AdminListOrders(stubReporting{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/?limit=banana", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminOrdersSummary(t *testing.T) {
	svc := stubReporting{
		summaryFn: func(ctx context.Context) ([]reporting.SummaryRow, error) {
			return []reporting.SummaryRow{{
				ProductName: "Adidas Men's Polo",
				Color:       "Black",
				Size:        "M",
				Deco:        "Stryker | Left Chest | PMS 421 Grey",
				Quantity:    3,
			}}, nil
		},
	}

	handler := AdminOrdersSummary(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []reporting.SummaryRow `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Quantity != 3 {
		t.Fatalf("unexpected payload %v", envelope.Data)
	}
}

func TestAdminOrdersExportSetsAttachmentHeaders(t *testing.T) {
	svc := stubReporting{
		exportFn: func(ctx context.Context) (string, []byte, error) {
			return "stryker-orders-2025-11-14.xlsx", []byte("workbook-bytes"), nil
		},
	}

	handler := AdminOrdersExport(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Disposition"); got != `attachment; filename="stryker-orders-2025-11-14.xlsx"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if got := resp.Header().Get("Content-Type"); got != xlsxContentType {
		t.Fatalf("unexpected content type %q", got)
	}
	if resp.Body.String() != "workbook-bytes" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}
