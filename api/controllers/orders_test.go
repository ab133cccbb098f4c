package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ordersvc "github.com/vanari-rv/caravan-configurator/internal/orders"
	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
	"github.com/vanari-rv/caravan-configurator/pkg/types"
)

type stubOrderService struct {
	order  *models.Order
	page   pagination.Page[models.Order]
	result *types.BulkDeleteResult
	err    error

	gotStatus string
}

func (s *stubOrderService) List(context.Context, pagination.Params, string) (pagination.Page[models.Order], error) {
	return s.page, s.err
}

func (s *stubOrderService) Get(context.Context, uuid.UUID) (*models.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) Create(context.Context, ordersvc.CreateOrderInput) (*models.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) UpdateStatus(_ context.Context, _ uuid.UUID, in ordersvc.UpdateStatusInput) (*models.Order, error) {
	s.gotStatus = in.Status
	return s.order, s.err
}

func (s *stubOrderService) Delete(context.Context, uuid.UUID) error {
	return s.err
}

func (s *stubOrderService) BulkDelete(context.Context, []uuid.UUID) (*types.BulkDeleteResult, error) {
	return s.result, s.err
}

type stubRenderer struct {
	pdf    []byte
	err    error
	gotURL string
}

func (s *stubRenderer) RenderPage(_ context.Context, pageURL string) ([]byte, error) {
	s.gotURL = pageURL
	return s.pdf, s.err
}

func sampleOrder() *models.Order {
	modelID := uuid.New()
	return &models.Order{
		ID:             uuid.New(),
		VehicleModelID: modelID,
		VehicleModel: &models.VehicleModel{
			ID:        modelID,
			Name:      "Grand Tourer 620",
			BasePrice: decimal.NewFromInt(79500),
		},
		CustomerInfo: &models.CustomerInfo{
			FirstName: "Alex",
			LastName:  "Nguyen",
			Email:     "alex@example.com",
			Phone:     "0400000000",
		},
		BasePrice:  decimal.NewFromInt(79500),
		TotalPrice: decimal.NewFromInt(80160),
		Status:     enums.OrderStatusPending,
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	order := sampleOrder()
	stub := &stubOrderService{order: order}
	handler := UpdateOrderStatus(stub, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/orders/x/status", strings.NewReader(`{"status":"contacted"}`)),
		"id", order.ID.String(),
	)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotStatus != "contacted" {
		t.Fatalf("unexpected status: %q", stub.gotStatus)
	}
}

func TestUpdateOrderStatusRejectedTransition(t *testing.T) {
	stub := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "cannot move from pending to completed")}
	handler := UpdateOrderStatus(stub, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/orders/x/status", strings.NewReader(`{"status":"completed"}`)),
		"id", uuid.NewString(),
	)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

func TestGetOrderSummary(t *testing.T) {
	order := sampleOrder()
	handler := GetOrderSummary(&stubOrderService{order: order}, "http://localhost:8080", nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/orders/x/summary", nil), "id", order.ID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			ShareURL string `json:"share_url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(envelope.Data.ShareURL, "order="+order.ID.String()) {
		t.Fatalf("share url missing order id: %s", envelope.Data.ShareURL)
	}
	if !strings.Contains(envelope.Data.ShareURL, "config=") {
		t.Fatalf("share url missing config payload: %s", envelope.Data.ShareURL)
	}
}

func TestDownloadOrderSummaryPDF(t *testing.T) {
	order := sampleOrder()
	renderer := &stubRenderer{pdf: []byte("%PDF-1.7 content")}
	handler := DownloadOrderSummaryPDF(&stubOrderService{order: order}, renderer, "http://localhost:8080", nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/orders/x/summary/pdf", nil), "id", order.ID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("unexpected content type: %s", got)
	}
	if !strings.Contains(resp.Header().Get("Content-Disposition"), order.ID.String()) {
		t.Fatalf("disposition missing order id: %s", resp.Header().Get("Content-Disposition"))
	}
	if resp.Body.String() != "%PDF-1.7 content" {
		t.Fatalf("unexpected body")
	}
	if !strings.Contains(renderer.gotURL, "/order-summary?order="+order.ID.String()) {
		t.Fatalf("renderer got unexpected url: %s", renderer.gotURL)
	}
}

func TestDownloadOrderSummaryPDFRendererDown(t *testing.T) {
	order := sampleOrder()
	renderer := &stubRenderer{err: pkgerrors.New(pkgerrors.CodeDependency, "no chrome or chromium executable found")}
	handler := DownloadOrderSummaryPDF(&stubOrderService{order: order}, renderer, "http://localhost:8080", nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/orders/x/summary/pdf", nil), "id", order.ID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}
