package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront-gateway/internal/domain"

	"golang.org/x/sync/errgroup"
)

// Catalog serves public product, category and brand reads. No session is
// involved; upstream bodies pass through verbatim.
type Catalog struct {
	caller domain.UpstreamCaller
	logger *slog.Logger
}

// NewCatalog creates a new Catalog usecase.
func NewCatalog(caller domain.UpstreamCaller, logger *slog.Logger) *Catalog {
	return &Catalog{caller: caller, logger: logger}
}

// HomeData aggregates the storefront landing page reads.
type HomeData struct {
	Products   json.RawMessage `json:"products"`
	Categories json.RawMessage `json:"categories"`
	Brands     json.RawMessage `json:"brands"`
}

func (uc *Catalog) Products(ctx context.Context) (json.RawMessage, error) {
	return callPublic(ctx, uc.caller, "/products")
}

func (uc *Catalog) Product(ctx context.Context, id string) (json.RawMessage, error) {
	return callPublic(ctx, uc.caller, "/products/"+id)
}

func (uc *Catalog) Categories(ctx context.Context) (json.RawMessage, error) {
	return callPublic(ctx, uc.caller, "/categories")
}

func (uc *Catalog) Category(ctx context.Context, id string) (json.RawMessage, error) {
	return callPublic(ctx, uc.caller, "/categories/"+id)
}

func (uc *Catalog) Brands(ctx context.Context) (json.RawMessage, error) {
	return callPublic(ctx, uc.caller, "/brands")
}

func (uc *Catalog) Brand(ctx context.Context, id string) (json.RawMessage, error) {
	return callPublic(ctx, uc.caller, "/brands/"+id)
}

// Home fetches products, categories and brands concurrently. It fails
// closed: if any branch fails the whole aggregate fails.
func (uc *Catalog) Home(ctx context.Context) (*HomeData, error) {
	var home HomeData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := uc.Products(gctx)
		home.Products = raw
		return err
	})
	g.Go(func() error {
		raw, err := uc.Categories(gctx)
		home.Categories = raw
		return err
	})
	g.Go(func() error {
		raw, err := uc.Brands(gctx)
		home.Brands = raw
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.WarnContext(ctx, "home aggregate failed", "error", err)
		return nil, err
	}
	return &home, nil
}
