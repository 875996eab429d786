package storefront_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/storefront"
)

func newTestService(t *testing.T) (storefront.Service, *storefront.SessionStore) {
	t.Helper()
	sessions, err := storefront.NewSessionStore(16, newTestMachine())
	require.NoError(t, err)
	// No repository: the catalog serves the built-in paintings.
	return storefront.NewService(sessions, catalog.NewService(nil, nil), 1999), sessions
}

func sessionOnDetails(t *testing.T, svc storefront.Service, paintingID string) string {
	t.Helper()
	ctx := context.Background()

	id, state, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	require.Equal(t, storefront.ScreenSplash, state.Screen)

	_, err = svc.CompleteSplash(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectPainting(ctx, id, paintingID)
	require.NoError(t, err)
	return id
}

func TestService_LargeSizeDoublesPrice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := sessionOnDetails(t, svc, "1") // Abstract Horizon, 2499

	state, err := svc.ProceedFromDetails(ctx, id, "large", "royal-gold")
	require.NoError(t, err)

	require.NotNil(t, state.Pending)
	assert.Equal(t, int64(4998), state.Pending.Price)
	assert.Equal(t, storefront.ScreenCustomer, state.Screen)
}

func TestService_OceanSerenityCartScenario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := sessionOnDetails(t, svc, "2")

	state, err := svc.AddToCart(ctx, id, "medium", "matte-black")
	require.NoError(t, err)
	require.Len(t, state.Cart, 1)
	assert.Equal(t, int64(4949), state.Cart[0].Price)

	_, err = svc.ProceedFromCart(ctx, id)
	require.NoError(t, err)

	sub, err := svc.SubmitCustomerDetails(ctx, id, storefront.CustomerDetails{
		FullName: "A",
		Phone:    "9876543210",
		WhatsApp: "",
		Address:  "X",
		ZipCode:  "1",
	})
	require.NoError(t, err)
	require.Len(t, sub.Links, 1)

	text := decodedText(t, sub.Links[0].URL)
	assert.Contains(t, text, "Total: ₹4,949")
	assert.Contains(t, text, "Ocean Serenity")
	assert.Equal(t, storefront.ScreenSuccess, sub.State.Screen)
}

func TestService_CustomUsesCustomBasePrice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, _, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.CompleteSplash(ctx, id)
	require.NoError(t, err)
	_, err = svc.Navigate(ctx, id, storefront.ScreenCustom)
	require.NoError(t, err)

	_, err = svc.ProceedFromCustom(ctx, id, "", "medium", "royal-gold")
	require.ErrorIs(t, err, storefront.ErrMissingImage)

	state, err := svc.ProceedFromCustom(ctx, id, "data:image/png;base64,AAAA", "medium", "royal-gold")
	require.NoError(t, err)
	require.NotNil(t, state.Pending)
	assert.Equal(t, int64(2999), state.Pending.Price)
	assert.Equal(t, "Custom Painting", state.Pending.Name())
}

func TestService_UnknownOptions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := sessionOnDetails(t, svc, "2")

	_, err := svc.AddToCart(ctx, id, "huge", "matte-black")
	require.ErrorIs(t, err, catalog.ErrUnknownSize)

	_, err = svc.AddToCart(ctx, id, "small", "neon")
	require.ErrorIs(t, err, catalog.ErrUnknownFrame)

	state, err := svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, state.Cart)
	assert.Equal(t, storefront.ScreenDetails, state.Screen)
}

func TestService_AddToCartOnWrongScreen(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, _, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.AddToCart(ctx, id, "small", "royal-gold")
	require.ErrorIs(t, err, storefront.ErrInvalidTransition)
}

func TestService_SelectUnknownPainting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, _, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.CompleteSplash(ctx, id)
	require.NoError(t, err)

	state, err := svc.SelectPainting(ctx, id, "404")
	require.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Equal(t, storefront.ScreenHome, state.Screen)
}

func TestService_SubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		details   storefront.CustomerDetails
		wantField string
	}{
		{
			name:      "empty full name",
			details:   storefront.CustomerDetails{FullName: "", Phone: "9876543210", Address: "X", ZipCode: "1"},
			wantField: "FullName",
		},
		{
			name:      "blank full name",
			details:   storefront.CustomerDetails{FullName: "   ", Phone: "9876543210", Address: "X", ZipCode: "1"},
			wantField: "FullName",
		},
		{
			name:      "short phone",
			details:   storefront.CustomerDetails{FullName: "A", Phone: "987654321", Address: "X", ZipCode: "1"},
			wantField: "Phone",
		},
		{
			name:      "empty address",
			details:   storefront.CustomerDetails{FullName: "A", Phone: "9876543210", Address: "", ZipCode: "1"},
			wantField: "Address",
		},
		{
			name:      "empty zip",
			details:   storefront.CustomerDetails{FullName: "A", Phone: "9876543210", Address: "X", ZipCode: ""},
			wantField: "ZipCode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			ctx := context.Background()
			id := sessionOnDetails(t, svc, "2")
			before, err := svc.ProceedFromDetails(ctx, id, "small", "royal-gold")
			require.NoError(t, err)

			sub, err := svc.SubmitCustomerDetails(ctx, id, tt.details)
			require.Error(t, err)
			assert.Nil(t, sub)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field())

			after, err := svc.GetSession(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, before, after, "rejected submission must not change the session")
		})
	}
}

func TestService_UnknownSession(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetSession(context.Background(), "missing")
	require.ErrorIs(t, err, storefront.ErrSessionNotFound)

	_, err = svc.SubmitCustomerDetails(context.Background(), "missing", validDetails())
	require.ErrorIs(t, err, storefront.ErrSessionNotFound)
}

func TestController_ConcurrentAddToCart(t *testing.T) {
	c := storefront.NewController(newTestMachine())
	ocean := paintingByID(t, "2")

	_, err := c.CompleteSplash()
	require.NoError(t, err)

	const shoppers = 20
	var wg sync.WaitGroup
	for i := 0; i < shoppers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each goroutine needs the details screen; only one add per
			// select can succeed, others see the cart screen and retry.
			for {
				if _, err := c.SelectCatalogItem(ocean); err != nil {
					_, _ = c.ReturnHome()
					continue
				}
				if _, err := c.AddToCart("small", "royal-gold", 3299); err == nil {
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, c.State().Cart, shoppers)
}

func TestSessionStore_EvictsLeastRecentlyUsed(t *testing.T) {
	store, err := storefront.NewSessionStore(2, newTestMachine())
	require.NoError(t, err)

	first, _, err := store.Create()
	require.NoError(t, err)
	second, _, err := store.Create()
	require.NoError(t, err)

	_, err = store.Get(first)
	require.NoError(t, err)

	third, _, err := store.Create()
	require.NoError(t, err)

	assert.Equal(t, 2, store.Len())
	_, err = store.Get(second)
	require.ErrorIs(t, err, storefront.ErrSessionNotFound)
	_, err = store.Get(first)
	require.NoError(t, err)
	_, err = store.Get(third)
	require.NoError(t, err)
}

func TestNewSessionStore_InvalidSize(t *testing.T) {
	_, err := storefront.NewSessionStore(0, newTestMachine())
	require.Error(t, err)
}
