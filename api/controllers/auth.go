package controllers

import (
	"net/http"
	"time"

	"github.com/loyaltyworks/rewards-backend/api/responses"
	"github.com/loyaltyworks/rewards-backend/api/validators"
	customersvc "github.com/loyaltyworks/rewards-backend/internal/customers"
	"github.com/loyaltyworks/rewards-backend/pkg/auth"
	"github.com/loyaltyworks/rewards-backend/pkg/config"
	pkgerrors "github.com/loyaltyworks/rewards-backend/pkg/errors"
	"github.com/loyaltyworks/rewards-backend/pkg/logger"
)

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type loginResponse struct {
	CustomerID uint   `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// Login resolves the customer by email and issues the session cookie. There is
// no password step; the storefront trusts the email it collected at signup.
func Login(svc customersvc.Service, cfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customer, err := svc.GetByEmail(r.Context(), payload.Email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := auth.MintSessionToken(cfg, time.Now().UTC(), auth.SessionTokenPayload{CustomerID: customer.ID})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint session token"))
			return
		}

		http.SetCookie(w, sessionCookie(cfg, token, int(cfg.TTL().Seconds())))
		responses.WriteSuccess(w, loginResponse{
			CustomerID: customer.ID,
			Name:       customer.Name,
			Email:      customer.Email,
		})
	}
}

// Logout expires the session cookie.
func Logout(cfg config.SessionConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, sessionCookie(cfg, "", -1))
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

func sessionCookie(cfg config.SessionConfig, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
