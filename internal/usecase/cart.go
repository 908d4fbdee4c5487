package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"storefront-gateway/internal/domain"
)

// Cart forwards cart operations to the upstream API. All persisted cart
// state lives upstream; this usecase only attaches the session token and
// folds the outcome into a Result.
type Cart struct {
	caller domain.UpstreamCaller
	logger *slog.Logger
}

// NewCart creates a new Cart usecase.
func NewCart(caller domain.UpstreamCaller, logger *slog.Logger) *Cart {
	return &Cart{caller: caller, logger: logger}
}

// Get fetches the session owner's cart.
func (uc *Cart) Get(ctx context.Context, session *domain.Session) (*domain.Result, error) {
	return callProtected(ctx, uc.caller, session, http.MethodGet, "/cart", nil)
}

// Add puts a product into the cart.
func (uc *Cart) Add(ctx context.Context, session *domain.Session, productID string) (*domain.Result, error) {
	return callProtected(ctx, uc.caller, session, http.MethodPost, "/cart", map[string]string{
		"productId": productID,
	})
}

// UpdateCount sets the quantity of a cart item.
func (uc *Cart) UpdateCount(ctx context.Context, session *domain.Session, itemID string, count int) (*domain.Result, error) {
	return callProtected(ctx, uc.caller, session, http.MethodPut, "/cart/"+itemID, map[string]int{
		"count": count,
	})
}

// Remove deletes a single cart item.
func (uc *Cart) Remove(ctx context.Context, session *domain.Session, itemID string) (*domain.Result, error) {
	return callProtected(ctx, uc.caller, session, http.MethodDelete, "/cart/"+itemID, nil)
}

// Clear empties the cart.
func (uc *Cart) Clear(ctx context.Context, session *domain.Session) (*domain.Result, error) {
	result, err := callProtected(ctx, uc.caller, session, http.MethodDelete, "/cart", nil)
	if err != nil {
		return nil, err
	}
	if result.OK {
		uc.logger.InfoContext(ctx, "cart cleared", "user_id", session.User.ID)
	}
	return result, nil
}
