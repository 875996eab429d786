package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
	apihttp "github.com/slmdecorcoin-design/slm-paintings-backend/internal/handler/http"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/storefront"
)

const (
	testOrderNumber    = "919876543210"
	testOperatorNumber = "917007597203"
)

var testLinker = messaging.NewLinker("https://wa.me", "https://api.whatsapp.com")

// newStorefrontRouter wires the real services on top of the built-in catalog.
func newStorefrontRouter(t *testing.T) http.Handler {
	t.Helper()

	machine := storefront.NewMachine(storefront.MachineConfig{
		OrderNumber:    testOrderNumber,
		OperatorNumber: testOperatorNumber,
		NotifyDelay:    500 * time.Millisecond,
		Linker:         testLinker,
	})
	sessions, err := storefront.NewSessionStore(8, machine)
	require.NoError(t, err)

	catalogSvc := catalog.NewService(nil, nil)
	storefrontSvc := storefront.NewService(sessions, catalogSvc, 1999)

	return apihttp.NewRouter(apihttp.Routes{
		Catalog:   apihttp.NewCatalogHandler(catalogSvc, 1999),
		Sessions:  apihttp.NewSessionHandler(storefrontSvc),
		StartedAt: time.Now(),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeSession(t *testing.T, rr *httptest.ResponseRecorder) apihttp.SessionResponse {
	t.Helper()
	var resp apihttp.SessionResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp), rr.Body.String())
	return resp
}

func createSession(t *testing.T, h http.Handler) string {
	t.Helper()
	rr := doJSON(t, h, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeSession(t, rr)
	require.NotEmpty(t, resp.ID)
	assert.Equal(t, storefront.ScreenSplash, resp.State.Screen)
	return resp.ID
}

func TestSessionHandler_CartCheckoutFlow(t *testing.T) {
	router := newStorefrontRouter(t)
	id := createSession(t, router)
	base := "/api/sessions/" + id

	rr := doJSON(t, router, http.MethodPost, base+"/splash", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, base+"/navigate", apihttp.NavigateRequest{Screen: "gallery"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, storefront.ScreenGallery, decodeSession(t, rr).State.Screen)

	rr = doJSON(t, router, http.MethodPost, base+"/select", apihttp.SelectPaintingRequest{PaintingID: "2"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, base+"/cart", apihttp.LineOptionsRequest{Size: "medium", Frame: "matte-black"})
	require.Equal(t, http.StatusOK, rr.Code)
	state := decodeSession(t, rr).State
	require.Len(t, state.Cart, 1)
	assert.Equal(t, int64(4949), state.Cart[0].Price)
	assert.Equal(t, storefront.ScreenCart, state.Screen)

	rr = doJSON(t, router, http.MethodPost, base+"/cart/checkout", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, storefront.ScreenCustomer, decodeSession(t, rr).State.Screen)

	rr = doJSON(t, router, http.MethodPost, base+"/customer", storefront.CustomerDetails{
		FullName: "A",
		Phone:    "9876543210",
		Address:  "X",
		ZipCode:  "1",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var sub apihttp.SubmissionResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&sub))
	assert.Equal(t, storefront.ScreenSuccess, sub.State.Screen)
	assert.Empty(t, sub.State.Cart)
	require.Len(t, sub.Links, 1)
	assert.Zero(t, sub.Links[0].DelayMS)

	u, err := url.Parse(sub.Links[0].URL)
	require.NoError(t, err)
	assert.Equal(t, "/"+testOrderNumber, u.Path)
	assert.Contains(t, u.Query().Get("text"), "Total: ₹4,949")
	assert.Contains(t, u.Query().Get("text"), "Ocean Serenity")
}

func TestSessionHandler_CustomFlowReturnsDelayedNotice(t *testing.T) {
	router := newStorefrontRouter(t)
	id := createSession(t, router)
	base := "/api/sessions/" + id

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, base+"/splash", nil).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, base+"/navigate", apihttp.NavigateRequest{Screen: "custom"}).Code)

	rr := doJSON(t, router, http.MethodPost, base+"/custom", apihttp.CustomPaintingRequest{
		ImageData: "data:image/png;base64,AAAA",
		Size:      "large",
		Frame:     "minimal-white",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	state := decodeSession(t, rr).State
	require.NotNil(t, state.Pending)
	assert.Equal(t, int64(3998), state.Pending.Price)

	rr = doJSON(t, router, http.MethodPost, base+"/customer", storefront.CustomerDetails{
		FullName: "Asha",
		Phone:    "9876543210",
		Address:  "X",
		ZipCode:  "1",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var sub apihttp.SubmissionResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&sub))
	require.Len(t, sub.Links, 2)
	assert.Equal(t, int64(500), sub.Links[1].DelayMS)

	u, err := url.Parse(sub.Links[1].URL)
	require.NoError(t, err)
	assert.Equal(t, "/"+testOperatorNumber, u.Path)
	assert.Contains(t, u.Query().Get("text"), "Customer: Asha")
}

func TestSessionHandler_Errors(t *testing.T) {
	router := newStorefrontRouter(t)
	id := createSession(t, router)
	base := "/api/sessions/" + id

	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
	}{
		{name: "unknown session", method: http.MethodGet, path: "/api/sessions/nope", wantStatus: http.StatusNotFound},
		{name: "action not allowed on splash", method: http.MethodPost, path: base + "/back", wantStatus: http.StatusConflict},
		{name: "unknown screen", method: http.MethodPost, path: base + "/navigate", body: apihttp.NavigateRequest{Screen: "checkout"}, wantStatus: http.StatusBadRequest},
		{name: "missing painting id", method: http.MethodPost, path: base + "/select", body: apihttp.SelectPaintingRequest{}, wantStatus: http.StatusBadRequest},
		{name: "bad position", method: http.MethodDelete, path: base + "/cart/first", wantStatus: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, path: base + "/navigate", body: map[string]string{"screen": "home", "extra": "x"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, router, tt.method, tt.path, tt.body)
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())

			var errorResponse map[string]interface{}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&errorResponse))
			assert.NotEmpty(t, errorResponse["error"])
		})
	}

	got := doJSON(t, router, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, storefront.ScreenSplash, decodeSession(t, got).State.Screen, "failed actions must not move the session")
}

func TestSessionHandler_SubmitValidation(t *testing.T) {
	router := newStorefrontRouter(t)
	id := createSession(t, router)
	base := "/api/sessions/" + id

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, base+"/splash", nil).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, base+"/select", apihttp.SelectPaintingRequest{PaintingID: "1"}).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, base+"/details/proceed", apihttp.LineOptionsRequest{Size: "large", Frame: "royal-gold"}).Code)

	rr := doJSON(t, router, http.MethodPost, base+"/customer", storefront.CustomerDetails{
		FullName: "A",
		Phone:    "12345",
		Address:  "",
		ZipCode:  "1",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp apihttp.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Equal(t, map[string]string{
		"Phone":   "must be at least 10 characters",
		"Address": "is required",
	}, resp.Details)

	got := doJSON(t, router, http.MethodGet, base, nil)
	state := decodeSession(t, got).State
	assert.Equal(t, storefront.ScreenCustomer, state.Screen)
	require.NotNil(t, state.Pending)
	assert.Equal(t, int64(4998), state.Pending.Price)
}

func TestSessionHandler_BackFromCustomerUsesFlow(t *testing.T) {
	router := newStorefrontRouter(t)
	id := createSession(t, router)
	base := "/api/sessions/" + id

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, base+"/splash", nil).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, base+"/select", apihttp.SelectPaintingRequest{PaintingID: "3"}).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, base+"/cart", apihttp.LineOptionsRequest{Size: "small", Frame: "premium-wood"}).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, base+"/cart/checkout", nil).Code)

	rr := doJSON(t, router, http.MethodPost, base+"/back", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, storefront.ScreenCart, decodeSession(t, rr).State.Screen)

	rr = doJSON(t, router, http.MethodDelete, base+"/cart/0", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decodeSession(t, rr).State.Cart)

	rr = doJSON(t, router, http.MethodPost, base+"/cart/checkout", nil)
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestRouter_Health(t *testing.T) {
	router := newStorefrontRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp apihttp.HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, 0.0)
}
