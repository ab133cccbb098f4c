package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	configsvc "github.com/vanari-rv/caravan-configurator/internal/configurator"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/shareconfig"
)

type stubConfiguratorService struct {
	session *configsvc.Session
	catalog *configsvc.StepCatalog
	price   *configsvc.PriceBreakdown
	result  *configsvc.SubmissionResult
	payload *shareconfig.Payload
	err     error

	gotAdvance configsvc.AdvanceInput
}

func (s *stubConfiguratorService) StartSession(context.Context) (*configsvc.Session, error) {
	return s.session, s.err
}

func (s *stubConfiguratorService) GetSession(context.Context, string) (*configsvc.Session, error) {
	return s.session, s.err
}

func (s *stubConfiguratorService) Advance(_ context.Context, _ string, in configsvc.AdvanceInput) (*configsvc.Session, error) {
	s.gotAdvance = in
	return s.session, s.err
}

func (s *stubConfiguratorService) Back(context.Context, string) (*configsvc.Session, error) {
	return s.session, s.err
}

func (s *stubConfiguratorService) StepCatalog(context.Context, string) (*configsvc.StepCatalog, error) {
	return s.catalog, s.err
}

func (s *stubConfiguratorService) Price(context.Context, string) (*configsvc.PriceBreakdown, error) {
	return s.price, s.err
}

func (s *stubConfiguratorService) Submit(context.Context, string, configsvc.SubmitInput) (*configsvc.SubmissionResult, error) {
	return s.result, s.err
}

func (s *stubConfiguratorService) DecodeShare(string) (*shareconfig.Payload, error) {
	return s.payload, s.err
}

func TestStartConfiguratorSession(t *testing.T) {
	session := &configsvc.Session{ID: uuid.NewString(), Step: enums.WizardStepModel}
	handler := StartConfiguratorSession(&stubConfiguratorService{session: session}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/configurator/sessions", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	var envelope struct {
		Data configsvc.Session `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != session.ID {
		t.Fatalf("unexpected session id: %s", envelope.Data.ID)
	}
}

func TestAdvanceConfiguratorSession(t *testing.T) {
	modelID := uuid.NewString()
	stub := &stubConfiguratorService{session: &configsvc.Session{ID: "s1", Step: enums.WizardStepTheme}}
	handler := AdvanceConfiguratorSession(stub, nil)

	body := `{"step":1,"model":{"vehicle_model_id":"` + modelID + `"}}`
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/configurator/sessions/s1/advance", strings.NewReader(body)), "sessionId", "s1")
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotAdvance.Step != 1 || stub.gotAdvance.Model == nil || stub.gotAdvance.Model.VehicleModelID != modelID {
		t.Fatalf("unexpected advance input: %+v", stub.gotAdvance)
	}
}

func TestAdvanceConfiguratorSessionWrongStep(t *testing.T) {
	stub := &stubConfiguratorService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "session is on step 1, got step 3")}
	handler := AdvanceConfiguratorSession(stub, nil)

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/configurator/sessions/s1/advance", strings.NewReader(`{"step":3}`)), "sessionId", "s1")
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

func TestGetConfiguratorSessionExpired(t *testing.T) {
	stub := &stubConfiguratorService{err: pkgerrors.New(pkgerrors.CodeNotFound, "session not found or expired")}
	handler := GetConfiguratorSession(stub, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/configurator/sessions/gone", nil), "sessionId", "gone")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestSubmitConfiguratorSessionValidation(t *testing.T) {
	handler := SubmitConfiguratorSession(&stubConfiguratorService{}, nil)

	body := `{"customer":{"first_name":"","last_name":"","email":"bad","phone":"1"}}`
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/configurator/sessions/s1/submit", strings.NewReader(body)), "sessionId", "s1")
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestDecodeShareConfigMissingParam(t *testing.T) {
	handler := DecodeShareConfig(&stubConfiguratorService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/configurator/share", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestDecodeShareConfig(t *testing.T) {
	payload := &shareconfig.Payload{Model: uuid.NewString(), OrderID: uuid.NewString()}
	handler := DecodeShareConfig(&stubConfiguratorService{payload: payload}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/configurator/share?config=%7B%22model%22%3A%22x%22%7D", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data shareconfig.Payload `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.OrderID != payload.OrderID {
		t.Fatalf("unexpected order id: %s", envelope.Data.OrderID)
	}
}
