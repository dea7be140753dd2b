package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/loyaltyworks/rewards-backend/api/middleware"
	cartsvc "github.com/loyaltyworks/rewards-backend/internal/cart"
	loyaltysvc "github.com/loyaltyworks/rewards-backend/internal/loyalty"
	pkgerrors "github.com/loyaltyworks/rewards-backend/pkg/errors"
)

type stubLoyaltyService struct {
	result  *loyaltysvc.CheckoutResult
	points  *loyaltysvc.PointsDTO
	history []loyaltysvc.TransactionDTO
	err     error
}

func (s stubLoyaltyService) Checkout(ctx context.Context, customerID uint) (*loyaltysvc.CheckoutResult, error) {
	return s.result, s.err
}

func (s stubLoyaltyService) Points(ctx context.Context, customerID uint) (*loyaltysvc.PointsDTO, error) {
	return s.points, s.err
}

func (s stubLoyaltyService) History(ctx context.Context, customerID uint) ([]loyaltysvc.TransactionDTO, error) {
	return s.history, s.err
}

type stubCartService struct {
	cart       *cartsvc.CartDTO
	clearCalls int
	clearErr   error
}

func (s *stubCartService) Get(ctx context.Context, customerID uint) (*cartsvc.CartDTO, error) {
	return s.cart, nil
}

func (s *stubCartService) AddItem(ctx context.Context, customerID uint, input cartsvc.AddItemInput) (*cartsvc.CartDTO, error) {
	return s.cart, nil
}

func (s *stubCartService) UpdateItem(ctx context.Context, customerID uint, input cartsvc.UpdateItemInput) (*cartsvc.CartDTO, error) {
	return s.cart, nil
}

func (s *stubCartService) RemoveItem(ctx context.Context, customerID, productID uint) (*cartsvc.CartDTO, error) {
	return s.cart, nil
}

func (s *stubCartService) Clear(ctx context.Context, customerID uint) error {
	s.clearCalls++
	return s.clearErr
}

func checkoutRequest(customerID uint) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	if customerID != 0 {
		req = req.WithContext(middleware.WithCustomerID(req.Context(), customerID))
	}
	return req
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	cartService := &stubCartService{}
	handler := Checkout(
		stubLoyaltyService{result: &loyaltysvc.CheckoutResult{
			TotalPointsEarned:        4800,
			InvalidProducts:          []uint{},
			ProductsMissingCategory:  []uint{},
			PointEarningRulesMissing: []uint{},
			Success:                  true,
		}},
		cartService,
		nil,
	)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, checkoutRequest(1))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var result loyaltysvc.CheckoutResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success result")
	}
	if result.TotalPointsEarned != 4800 {
		t.Fatalf("expected 4800 points got %d", result.TotalPointsEarned)
	}
	if cartService.clearCalls != 1 {
		t.Fatalf("expected cart cleared once, got %d", cartService.clearCalls)
	}
}

func TestCheckoutPartialLeavesCart(t *testing.T) {
	cartService := &stubCartService{}
	handler := Checkout(
		stubLoyaltyService{result: &loyaltysvc.CheckoutResult{
			TotalPointsEarned:        15,
			InvalidProducts:          []uint{9999},
			ProductsMissingCategory:  []uint{},
			PointEarningRulesMissing: []uint{},
			Success:                  false,
		}},
		cartService,
		nil,
	)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, checkoutRequest(1))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var result loyaltysvc.CheckoutResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Success {
		t.Fatalf("expected partial result")
	}
	if len(result.InvalidProducts) != 1 || result.InvalidProducts[0] != 9999 {
		t.Fatalf("unexpected invalid products %v", result.InvalidProducts)
	}
	if cartService.clearCalls != 0 {
		t.Fatalf("cart should stay intact on a partial checkout")
	}
}

func TestCheckoutRequiresSession(t *testing.T) {
	handler := Checkout(stubLoyaltyService{}, &stubCartService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, checkoutRequest(0))

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCheckoutServiceErrorMapsStatus(t *testing.T) {
	cartService := &stubCartService{}
	handler := Checkout(
		stubLoyaltyService{err: pkgerrors.New(pkgerrors.CodeNotFound, "loyalty account not found")},
		cartService,
		nil,
	)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, checkoutRequest(1))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	if cartService.clearCalls != 0 {
		t.Fatalf("cart should not be cleared on failure")
	}
}

func TestCheckoutStillRespondsWhenCartClearFails(t *testing.T) {
	cartService := &stubCartService{clearErr: pkgerrors.New(pkgerrors.CodeDependency, "db down")}
	handler := Checkout(
		stubLoyaltyService{result: &loyaltysvc.CheckoutResult{
			TotalPointsEarned:        100,
			InvalidProducts:          []uint{},
			ProductsMissingCategory:  []uint{},
			PointEarningRulesMissing: []uint{},
			Success:                  true,
		}},
		cartService,
		nil,
	)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, checkoutRequest(1))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if cartService.clearCalls != 1 {
		t.Fatalf("expected clear attempt")
	}
}

func TestPointsBalance(t *testing.T) {
	handler := PointsBalance(stubLoyaltyService{points: &loyaltysvc.PointsDTO{Points: 4900}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/points", nil)
	req = req.WithContext(middleware.WithCustomerID(req.Context(), 1))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var body loyaltysvc.PointsDTO
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Points != 4900 {
		t.Fatalf("expected 4900 points got %d", body.Points)
	}
}

func TestPointsHistoryRequiresSession(t *testing.T) {
	handler := PointsHistory(stubLoyaltyService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/points/history", nil))

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
