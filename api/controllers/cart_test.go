package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/loyaltyworks/rewards-backend/api/middleware"
	cartsvc "github.com/loyaltyworks/rewards-backend/internal/cart"
)

type recordingCartService struct {
	stubCartService
	gotCustomerID uint
	gotAdd        cartsvc.AddItemInput
	gotUpdate     cartsvc.UpdateItemInput
	gotRemoveID   uint
}

func (s *recordingCartService) AddItem(ctx context.Context, customerID uint, input cartsvc.AddItemInput) (*cartsvc.CartDTO, error) {
	s.gotCustomerID = customerID
	s.gotAdd = input
	return s.cart, nil
}

func (s *recordingCartService) UpdateItem(ctx context.Context, customerID uint, input cartsvc.UpdateItemInput) (*cartsvc.CartDTO, error) {
	s.gotCustomerID = customerID
	s.gotUpdate = input
	return s.cart, nil
}

func (s *recordingCartService) RemoveItem(ctx context.Context, customerID, productID uint) (*cartsvc.CartDTO, error) {
	s.gotCustomerID = customerID
	s.gotRemoveID = productID
	return s.cart, nil
}

func cartTestRouter(svc cartsvc.Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", CartGet(svc, nil))
		r.Delete("/", CartClear(svc, nil))
		r.Post("/items", CartAddItem(svc, nil))
		r.Put("/items/{productID}", CartUpdateItem(svc, nil))
		r.Delete("/items/{productID}", CartRemoveItem(svc, nil))
	})
	return r
}

func sessionRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(middleware.WithCustomerID(req.Context(), 1))
}

func TestCartAddItem(t *testing.T) {
	svc := &recordingCartService{stubCartService: stubCartService{cart: &cartsvc.CartDTO{
		ID:         1,
		CustomerID: 1,
		Items:      []cartsvc.CartItemDTO{{ProductID: 2, Quantity: 3}},
	}}}
	router := cartTestRouter(svc)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":2,"quantity":3}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotCustomerID != 1 {
		t.Fatalf("expected customer 1, got %d", svc.gotCustomerID)
	}
	if svc.gotAdd.ProductID != 2 || svc.gotAdd.Quantity != 3 {
		t.Fatalf("unexpected add input %+v", svc.gotAdd)
	}

	var cart cartsvc.CartDTO
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("unexpected cart %+v", cart)
	}
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	svc := &recordingCartService{}
	router := cartTestRouter(svc)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":2,"quantity":0}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartUpdateItemParsesRouteParam(t *testing.T) {
	svc := &recordingCartService{stubCartService: stubCartService{cart: &cartsvc.CartDTO{ID: 1, CustomerID: 1}}}
	router := cartTestRouter(svc)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, sessionRequest(http.MethodPut, "/api/v1/cart/items/42", `{"quantity":5}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotUpdate.ProductID != 42 || svc.gotUpdate.Quantity != 5 {
		t.Fatalf("unexpected update input %+v", svc.gotUpdate)
	}
}

func TestCartUpdateItemRejectsBadParam(t *testing.T) {
	svc := &recordingCartService{}
	router := cartTestRouter(svc)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, sessionRequest(http.MethodPut, "/api/v1/cart/items/abc", `{"quantity":5}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRemoveItem(t *testing.T) {
	svc := &recordingCartService{stubCartService: stubCartService{cart: &cartsvc.CartDTO{ID: 1, CustomerID: 1}}}
	router := cartTestRouter(svc)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, sessionRequest(http.MethodDelete, "/api/v1/cart/items/7", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotRemoveID != 7 {
		t.Fatalf("expected product 7 removed, got %d", svc.gotRemoveID)
	}
}

func TestCartGetRequiresSession(t *testing.T) {
	svc := &recordingCartService{}
	router := cartTestRouter(svc)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
