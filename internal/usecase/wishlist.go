package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront-gateway/internal/domain"
)

// Wishlist forwards wishlist operations to the upstream API and maintains
// a derived mirror of wishlisted product ids. The mirror is never the
// source of truth: it is refreshed on successful reads and invalidated on
// every successful mutation.
type Wishlist struct {
	caller domain.UpstreamCaller
	mirror domain.WishlistMirror
	logger *slog.Logger
}

// NewWishlist creates a new Wishlist usecase.
func NewWishlist(caller domain.UpstreamCaller, mirror domain.WishlistMirror, logger *slog.Logger) *Wishlist {
	return &Wishlist{caller: caller, mirror: mirror, logger: logger}
}

// wishlistBody is the subset of the upstream wishlist envelope needed for
// the id mirror.
type wishlistBody struct {
	Data []struct {
		ID string `json:"_id"`
	} `json:"data"`
}

// Get fetches the wishlist and refreshes the mirror on success.
func (uc *Wishlist) Get(ctx context.Context, session *domain.Session) (*domain.Result, error) {
	result, err := callProtected(ctx, uc.caller, session, http.MethodGet, "/wishlist", nil)
	if err != nil {
		return nil, err
	}
	if result.OK {
		uc.mirror.Set(session.User.ID, extractIDs(result.Data))
	}
	return result, nil
}

// IDs returns the wishlisted product ids, served from the mirror when
// fresh and refetched from upstream otherwise.
func (uc *Wishlist) IDs(ctx context.Context, session *domain.Session) ([]string, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	if ids, found := uc.mirror.Get(session.User.ID); found {
		return ids, nil
	}

	result, err := uc.Get(ctx, session)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		// Rejected reads degrade to an empty badge, not an error page.
		return []string{}, nil
	}
	return extractIDs(result.Data), nil
}

// Add puts a product on the wishlist and invalidates the mirror.
func (uc *Wishlist) Add(ctx context.Context, session *domain.Session, productID string) (*domain.Result, error) {
	result, err := callProtected(ctx, uc.caller, session, http.MethodPost, "/wishlist", map[string]string{
		"productId": productID,
	})
	if err != nil {
		return nil, err
	}
	if result.OK {
		uc.mirror.Invalidate(session.User.ID)
	}
	return result, nil
}

// Remove takes a product off the wishlist and invalidates the mirror.
func (uc *Wishlist) Remove(ctx context.Context, session *domain.Session, productID string) (*domain.Result, error) {
	result, err := callProtected(ctx, uc.caller, session, http.MethodDelete, "/wishlist/"+productID, nil)
	if err != nil {
		return nil, err
	}
	if result.OK {
		uc.mirror.Invalidate(session.User.ID)
	}
	return result, nil
}

// extractIDs pulls product ids out of the upstream wishlist body.
func extractIDs(raw json.RawMessage) []string {
	var body wishlistBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return []string{}
	}
	ids := make([]string, 0, len(body.Data))
	for _, item := range body.Data {
		if item.ID != "" {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
