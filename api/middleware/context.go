package middleware

import "context"

type contextKey string

const ctxCustomerID contextKey = "customer_id"

func CustomerIDFromContext(ctx context.Context) uint {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxCustomerID).(uint); ok {
		return v
	}
	return 0
}

// WithCustomerID injects the authenticated customer identifier into the context.
func WithCustomerID(ctx context.Context, customerID uint) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCustomerID, customerID)
}
