package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wattwise/energy-system/internal/api/middleware"
	"github.com/wattwise/energy-system/internal/core/domain"
	"github.com/wattwise/energy-system/internal/core/ports"
)

type stubApplianceService struct {
	createFn  func(ctx context.Context, userID int64, in ports.CreateApplianceInput) (*domain.Appliance, error)
	listFn    func(ctx context.Context, userID int64) ([]domain.Appliance, error)
	controlFn func(ctx context.Context, userID, applianceID int64, action string) (*ports.ControlResult, error)
}

func (s *stubApplianceService) Create(ctx context.Context, userID int64, in ports.CreateApplianceInput) (*domain.Appliance, error) {
	return s.createFn(ctx, userID, in)
}

func (s *stubApplianceService) List(ctx context.Context, userID int64) ([]domain.Appliance, error) {
	return s.listFn(ctx, userID)
}

func (s *stubApplianceService) Control(ctx context.Context, userID, applianceID int64, action string) (*ports.ControlResult, error) {
	return s.controlFn(ctx, userID, applianceID, action)
}

func asAlice(c echo.Context) {
	c.Set(middleware.UserKey, &domain.User{ID: 7, Username: "alice"})
}

func TestApplianceHandler_Create_Success(t *testing.T) {
	stub := &stubApplianceService{
		createFn: func(ctx context.Context, userID int64, in ports.CreateApplianceInput) (*domain.Appliance, error) {
			if userID != 7 || in.Name != "Living Room AC" || in.Type != "ac" || in.PowerRatingKW != 2.5 {
				t.Fatalf("unexpected input: %d %+v", userID, in)
			}
			return &domain.Appliance{ID: 1, Name: in.Name, Type: domain.TypeAC, PowerRatingKW: in.PowerRatingKW}, nil
		},
	}
	h := NewApplianceHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/appliances",
		`{"name":"Living Room AC","type":"ac","power_rating_kw":2.5}`)
	asAlice(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Living Room AC" || resp["type"] != "ac" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestApplianceHandler_Create_InvalidType(t *testing.T) {
	stub := &stubApplianceService{
		createFn: func(ctx context.Context, userID int64, in ports.CreateApplianceInput) (*domain.Appliance, error) {
			return nil, domain.ErrInvalidApplianceType
		},
	}
	h := NewApplianceHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/appliances",
		`{"name":"Mystery Box","type":"toaster"}`)
	asAlice(c)

	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidApplianceType) {
		t.Fatalf("expected ErrInvalidApplianceType, got %v", err)
	}
}

func TestApplianceHandler_Create_MissingName(t *testing.T) {
	stub := &stubApplianceService{
		createFn: func(ctx context.Context, userID int64, in ports.CreateApplianceInput) (*domain.Appliance, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewApplianceHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/appliances", `{"type":"ac"}`)
	asAlice(c)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestApplianceHandler_List(t *testing.T) {
	stub := &stubApplianceService{
		listFn: func(ctx context.Context, userID int64) ([]domain.Appliance, error) {
			return []domain.Appliance{
				{ID: 1, Name: "Fridge", Type: domain.TypeFridge, IsOn: true, PowerRatingKW: 0.3},
			}, nil
		},
	}
	h := NewApplianceHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/appliances", "")
	asAlice(c)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "Fridge" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestApplianceHandler_Control_Success(t *testing.T) {
	stub := &stubApplianceService{
		controlFn: func(ctx context.Context, userID, applianceID int64, action string) (*ports.ControlResult, error) {
			if userID != 7 || applianceID != 3 || action != "off" {
				t.Fatalf("unexpected args: %d %d %s", userID, applianceID, action)
			}
			return &ports.ControlResult{ApplianceID: 3, NewStatus: false, AIMessage: "saved"}, nil
		},
	}
	h := NewApplianceHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/appliances/3/control", `{"action":"off"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	asAlice(c)

	if err := h.Control(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp controlApplianceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.ApplianceID != 3 || resp.NewStatus || resp.AIMessage != "saved" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestApplianceHandler_Control_NotOwned(t *testing.T) {
	stub := &stubApplianceService{
		controlFn: func(ctx context.Context, userID, applianceID int64, action string) (*ports.ControlResult, error) {
			return nil, domain.ErrApplianceNotFound
		},
	}
	h := NewApplianceHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/appliances/99/control", `{"action":"ON"}`)
	c.SetParamNames("id")
	c.SetParamValues("99")
	asAlice(c)

	if err := h.Control(c); !errors.Is(err, domain.ErrApplianceNotFound) {
		t.Fatalf("expected ErrApplianceNotFound, got %v", err)
	}
}

func TestApplianceHandler_Control_BadID(t *testing.T) {
	h := NewApplianceHandler(&stubApplianceService{})

	c, _ := newTestContext(t, http.MethodPost, "/appliances/abc/control", `{"action":"ON"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	asAlice(c)

	err := h.Control(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
