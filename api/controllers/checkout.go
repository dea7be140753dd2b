package controllers

import (
	"net/http"

	"github.com/loyaltyworks/rewards-backend/api/responses"
	cartsvc "github.com/loyaltyworks/rewards-backend/internal/cart"
	loyaltysvc "github.com/loyaltyworks/rewards-backend/internal/loyalty"
	pkgerrors "github.com/loyaltyworks/rewards-backend/pkg/errors"
	"github.com/loyaltyworks/rewards-backend/pkg/logger"
)

// Checkout runs the points calculation over the session customer's cart. The
// cart is cleared only when every item earned points; a partial result leaves
// it untouched so the customer can fix it and retry.
func Checkout(svc loyaltysvc.Service, cartSvc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "loyalty service unavailable"))
			return
		}
		if cartSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		customerID, err := customerIDFromSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Checkout(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if result.Success {
			if err := cartSvc.Clear(r.Context(), customerID); err != nil {
				// Points are already committed; the stale cart is an
				// inconvenience, not a correctness problem.
				if logg != nil {
					logg.Error(r.Context(), "checkout.cart_clear_failed", err)
				}
			}
		}

		responses.WriteSuccess(w, result)
	}
}
