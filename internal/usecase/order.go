package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"storefront-gateway/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Orders forwards order placement and listing to the upstream API. The
// client is responsible for sequencing address save before placement;
// there is no server-side transaction tying the two together.
type Orders struct {
	caller   domain.UpstreamCaller
	validate *validator.Validate
	baseURL  string
	logger   *slog.Logger
}

// NewOrders creates a new Orders usecase. baseURL is used as the return
// target for hosted checkout sessions.
func NewOrders(caller domain.UpstreamCaller, baseURL string, logger *slog.Logger) *Orders {
	return &Orders{
		caller:   caller,
		validate: validator.New(),
		baseURL:  baseURL,
		logger:   logger,
	}
}

type orderBody struct {
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
}

// PlaceCash places a cash-on-delivery order for a cart.
func (uc *Orders) PlaceCash(ctx context.Context, session *domain.Session, cartID string, address domain.ShippingAddress) (*domain.Result, error) {
	if err := uc.validate.Struct(address); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, validationMessage(err))
	}

	result, err := callProtected(ctx, uc.caller, session, http.MethodPost, "/orders/"+cartID, orderBody{ShippingAddress: address})
	if err != nil {
		return nil, err
	}
	if result.OK {
		uc.logger.InfoContext(ctx, "cash order placed", "user_id", session.User.ID, "cart_id", cartID)
	}
	return result, nil
}

// CheckoutSession starts a hosted checkout session for a cart. The upstream
// redirects the buyer back to the configured base URL afterwards.
func (uc *Orders) CheckoutSession(ctx context.Context, session *domain.Session, cartID string, address domain.ShippingAddress) (*domain.Result, error) {
	if err := uc.validate.Struct(address); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, validationMessage(err))
	}

	path := "/orders/checkout-session/" + cartID + "?url=" + url.QueryEscape(uc.baseURL)
	result, err := callProtected(ctx, uc.caller, session, http.MethodPost, path, orderBody{ShippingAddress: address})
	if err != nil {
		return nil, err
	}
	if result.OK {
		uc.logger.InfoContext(ctx, "checkout session created", "user_id", session.User.ID, "cart_id", cartID)
	}
	return result, nil
}

// List fetches the session owner's orders.
func (uc *Orders) List(ctx context.Context, session *domain.Session) (*domain.Result, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return callProtected(ctx, uc.caller, session, http.MethodGet, "/orders/user/"+session.User.ID, nil)
}
