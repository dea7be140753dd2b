package controllers

import (
	"net/http"

	"github.com/loyaltyworks/rewards-backend/api/responses"
	loyaltysvc "github.com/loyaltyworks/rewards-backend/internal/loyalty"
	"github.com/loyaltyworks/rewards-backend/pkg/logger"
)

// PointsBalance returns the session customer's current points balance.
func PointsBalance(svc loyaltysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := customerIDFromSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		points, err := svc.Points(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, points)
	}
}

// PointsHistory returns the session customer's point transactions in the
// order they were recorded.
func PointsHistory(svc loyaltysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := customerIDFromSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		history, err := svc.History(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, history)
	}
}
