package wishlist

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"petbloom/internal/config"
	"petbloom/internal/demoserver"
	"petbloom/internal/domain/catalog"
	"petbloom/internal/domain/commerce"
	"petbloom/internal/gateway"
	"petbloom/internal/session"

	catalogsvc "petbloom/internal/service/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistFixture(t *testing.T) (*Service, []catalog.Pet) {
	t.Helper()
	cfg := config.AppConfig{JWTSecret: "test-secret", JWTTTL: time.Hour}
	srv := httptest.NewServer(demoserver.NewServer(cfg, nil).Handler())
	t.Cleanup(srv.Close)

	gw := gateway.New(gateway.Config{BaseURL: srv.URL + "/api/v1"})
	sessions := session.NewStore(gw, nil, nil, config.ModeStrict, nil)
	_, err := sessions.Register(context.Background(), "pat@example.com", "secret123", "Pat Doe", "")
	require.NoError(t, err)

	pets, err := catalogsvc.NewService(gw, nil).ListPets(context.Background(), catalog.PetFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, pets)
	return NewService(gw, nil), pets
}

func TestWishlistFlow(t *testing.T) {
	svc, pets := newWishlistFixture(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, commerce.AddWishlistItemRequest{PetID: pets[0].ID})
	require.NoError(t, err)
	assert.Equal(t, pets[0].ID, item.PetID)

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.Remove(ctx, item.ID))
	items, err = svc.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddDuplicateFails(t *testing.T) {
	svc, pets := newWishlistFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, commerce.AddWishlistItemRequest{PetID: pets[0].ID})
	require.NoError(t, err)

	_, err = svc.Add(ctx, commerce.AddWishlistItemRequest{PetID: pets[0].ID})
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsValidation())
	assert.Equal(t, "Item already in wishlist", apiErr.Detail)
}

func TestClearWishlist(t *testing.T) {
	svc, pets := newWishlistFixture(t)
	ctx := context.Background()

	for _, p := range pets[:2] {
		_, err := svc.Add(ctx, commerce.AddWishlistItemRequest{PetID: p.ID})
		require.NoError(t, err)
	}
	require.NoError(t, svc.Clear(ctx))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
