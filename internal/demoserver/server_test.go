package demoserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petbloom/internal/config"
	"petbloom/internal/domain/catalog"
	"petbloom/internal/domain/commerce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.AppConfig{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}
	srv := httptest.NewServer(NewServer(cfg, nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

// doJSON issues one request against the test server and decodes the
// response into out when out is non-nil.
func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body, out any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+"/api/v1"+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

type authResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	AccessToken string `json:"access_token"`
}

func registerUser(t *testing.T, srv *httptest.Server, email string) authResponse {
	t.Helper()
	var out authResponse
	resp := doJSON(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": "secret123",
		"fullName": "Test User",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, out.AccessToken)
	return out
}

type detailBody struct {
	Detail string `json:"detail"`
}

// ========== Auth ==========

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t)

	reg := registerUser(t, srv, "pat@example.com")
	assert.Equal(t, "pat@example.com", reg.Email)
	assert.Equal(t, "Test User", reg.FullName)

	var login authResponse
	resp := doJSON(t, srv, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "pat@example.com",
		"password": "secret123",
	}, &login)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, reg.ID, login.ID)
	assert.NotEmpty(t, login.AccessToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srv := newTestServer(t)
	registerUser(t, srv, "pat@example.com")

	var body detailBody
	resp := doJSON(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "pat@example.com",
		"password": "otherpass123",
		"fullName": "Someone Else",
	}, &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already registered", body.Detail)
}

func TestLoginWrongPassword(t *testing.T) {
	srv := newTestServer(t)
	registerUser(t, srv, "pat@example.com")

	var body detailBody
	resp := doJSON(t, srv, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "pat@example.com",
		"password": "wrong",
	}, &body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", body.Detail)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	srv := newTestServer(t)

	var body detailBody
	resp := doJSON(t, srv, http.MethodGet, "/cart", "", nil, &body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NotEmpty(t, body.Detail)
}

func TestProtectedRouteWithGarbageToken(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/orders", "not-a-jwt", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ========== Catalog ==========

func TestCatalogTree(t *testing.T) {
	srv := newTestServer(t)

	var petList struct {
		Pets []catalog.Pet `json:"pets"`
	}
	resp := doJSON(t, srv, http.MethodGet, "/pets", "", nil, &petList)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, petList.Pets)

	var filtered struct {
		Pets []catalog.Pet `json:"pets"`
	}
	doJSON(t, srv, http.MethodGet, "/pets?species=cat", "", nil, &filtered)
	require.NotEmpty(t, filtered.Pets)
	for _, p := range filtered.Pets {
		assert.Equal(t, "cat", p.Species)
	}

	var species struct {
		Species []string `json:"species"`
	}
	doJSON(t, srv, http.MethodGet, "/pets/species/list", "", nil, &species)
	assert.ElementsMatch(t, []string{"bird", "cat", "dog"}, species.Species)

	var breeds struct {
		Breeds []string `json:"breeds"`
	}
	doJSON(t, srv, http.MethodGet, "/pets/breeds/cat", "", nil, &breeds)
	assert.ElementsMatch(t, []string{"Siamese", "Maine Coon"}, breeds.Breeds)

	var single catalog.Pet
	resp = doJSON(t, srv, http.MethodGet, "/pets/"+petList.Pets[0].ID, "", nil, &single)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, petList.Pets[0].Name, single.Name)

	resp = doJSON(t, srv, http.MethodGet, "/pets/nonexistent", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductTree(t *testing.T) {
	srv := newTestServer(t)

	var productList struct {
		Products []catalog.Product `json:"products"`
	}
	resp := doJSON(t, srv, http.MethodGet, "/products?category=health", "", nil, &productList)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, productList.Products)
	for _, p := range productList.Products {
		assert.Equal(t, "health", p.Category)
	}

	var categories struct {
		Categories []string `json:"categories"`
	}
	doJSON(t, srv, http.MethodGet, "/products/categories/list", "", nil, &categories)
	assert.Contains(t, categories.Categories, "food")
	assert.Contains(t, categories.Categories, "toys")

	var brands struct {
		Brands []string `json:"brands"`
	}
	doJSON(t, srv, http.MethodGet, "/products/brands/list", "", nil, &brands)
	assert.Contains(t, brands.Brands, "PawFuel")
}

// ========== Cart and Orders ==========

func firstProductID(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	var productList struct {
		Products []catalog.Product `json:"products"`
	}
	doJSON(t, srv, http.MethodGet, "/products", "", nil, &productList)
	require.NotEmpty(t, productList.Products)
	return productList.Products[0].ID
}

func TestCartLifecycle(t *testing.T) {
	srv := newTestServer(t)
	user := registerUser(t, srv, "pat@example.com")
	productID := firstProductID(t, srv)

	var item commerce.CartItem
	resp := doJSON(t, srv, http.MethodPost, "/cart", user.AccessToken, commerce.AddCartItemRequest{
		ProductID: productID,
		Quantity:  2,
	}, &item)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, item.Quantity)
	assert.Greater(t, item.Price, 0.0, "price is captured from the catalog at add time")

	var updated commerce.CartItem
	resp = doJSON(t, srv, http.MethodPut, "/cart/"+item.ID, user.AccessToken, commerce.UpdateCartItemRequest{Quantity: 5}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, updated.Quantity)

	var items []commerce.CartItem
	doJSON(t, srv, http.MethodGet, "/cart", user.AccessToken, nil, &items)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	resp = doJSON(t, srv, http.MethodDelete, "/cart/"+item.ID, user.AccessToken, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	doJSON(t, srv, http.MethodGet, "/cart", user.AccessToken, nil, &items)
	assert.Empty(t, items)
}

func TestCartIsPerUser(t *testing.T) {
	srv := newTestServer(t)
	alice := registerUser(t, srv, "alice@example.com")
	bob := registerUser(t, srv, "bob@example.com")
	productID := firstProductID(t, srv)

	var item commerce.CartItem
	doJSON(t, srv, http.MethodPost, "/cart", alice.AccessToken, commerce.AddCartItemRequest{ProductID: productID, Quantity: 1}, &item)

	// Bob cannot touch Alice's item.
	resp := doJSON(t, srv, http.MethodDelete, "/cart/"+item.ID, bob.AccessToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var bobItems []commerce.CartItem
	doJSON(t, srv, http.MethodGet, "/cart", bob.AccessToken, nil, &bobItems)
	assert.Empty(t, bobItems)
}

func TestOrderFromCart(t *testing.T) {
	srv := newTestServer(t)
	user := registerUser(t, srv, "pat@example.com")
	productID := firstProductID(t, srv)

	doJSON(t, srv, http.MethodPost, "/cart", user.AccessToken, commerce.AddCartItemRequest{ProductID: productID, Quantity: 3}, nil)

	var order commerce.Order
	resp := doJSON(t, srv, http.MethodPost, "/orders", user.AccessToken, commerce.CreateOrderRequest{
		ShippingAddress: "1 Main St",
		DeliveryOption:  "standard",
	}, &order)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, commerce.OrderPending, order.Status)
	assert.Greater(t, order.TotalPrice, 0.0)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)

	// Ordering clears the cart.
	var items []commerce.CartItem
	doJSON(t, srv, http.MethodGet, "/cart", user.AccessToken, nil, &items)
	assert.Empty(t, items)

	var fetched commerce.Order
	resp = doJSON(t, srv, http.MethodGet, "/orders/"+order.ID, user.AccessToken, nil, &fetched)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, order.ID, fetched.ID)

	var updated commerce.Order
	resp = doJSON(t, srv, http.MethodPut, "/orders/"+order.ID+"/status?status=shipped", user.AccessToken, nil, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, commerce.OrderShipped, updated.Status)

	resp = doJSON(t, srv, http.MethodPut, "/orders/"+order.ID+"/tracking?tracking_number=TRK-1", user.AccessToken, nil, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "TRK-1", updated.TrackingNumber)

	var filtered []commerce.Order
	doJSON(t, srv, http.MethodGet, "/orders?status=shipped", user.AccessToken, nil, &filtered)
	require.Len(t, filtered, 1)
	var none []commerce.Order
	doJSON(t, srv, http.MethodGet, "/orders?status=delivered", user.AccessToken, nil, &none)
	assert.Empty(t, none)
}

func TestOrderFromEmptyCart(t *testing.T) {
	srv := newTestServer(t)
	user := registerUser(t, srv, "pat@example.com")

	var body detailBody
	resp := doJSON(t, srv, http.MethodPost, "/orders", user.AccessToken, commerce.CreateOrderRequest{ShippingAddress: "1 Main St"}, &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cart is empty", body.Detail)
}

// ========== Wishlist ==========

func TestWishlistRejectsDuplicates(t *testing.T) {
	srv := newTestServer(t)
	user := registerUser(t, srv, "pat@example.com")
	productID := firstProductID(t, srv)

	resp := doJSON(t, srv, http.MethodPost, "/wishlist", user.AccessToken, commerce.AddWishlistItemRequest{ProductID: productID}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body detailBody
	resp = doJSON(t, srv, http.MethodPost, "/wishlist", user.AccessToken, commerce.AddWishlistItemRequest{ProductID: productID}, &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Item already in wishlist", body.Detail)

	var items []commerce.WishlistItem
	doJSON(t, srv, http.MethodGet, "/wishlist", user.AccessToken, nil, &items)
	assert.Len(t, items, 1)
}

// ========== Addresses and Messages ==========

func TestAddressDefaultIsExclusive(t *testing.T) {
	srv := newTestServer(t)
	user := registerUser(t, srv, "pat@example.com")

	var first commerce.Address
	doJSON(t, srv, http.MethodPost, "/addresses", user.AccessToken, commerce.CreateAddressRequest{
		Street: "1 Main St", City: "Nairobi", Country: "KE", IsDefault: true,
	}, &first)
	require.True(t, first.IsDefault)

	var second commerce.Address
	doJSON(t, srv, http.MethodPost, "/addresses", user.AccessToken, commerce.CreateAddressRequest{
		Street: "2 Side St", City: "Nairobi", Country: "KE", IsDefault: true,
	}, &second)
	require.True(t, second.IsDefault)

	var addresses []commerce.Address
	doJSON(t, srv, http.MethodGet, "/addresses", user.AccessToken, nil, &addresses)
	require.Len(t, addresses, 2)
	defaults := 0
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
			assert.Equal(t, second.ID, a.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestMessagesFlow(t *testing.T) {
	srv := newTestServer(t)
	alice := registerUser(t, srv, "alice@example.com")
	bob := registerUser(t, srv, "bob@example.com")

	var sent commerce.Message
	resp := doJSON(t, srv, http.MethodPost, "/messages", alice.AccessToken, commerce.SendMessageRequest{
		RecipientID: bob.ID,
		Content:     "Is Buddy still available?",
	}, &sent)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, sent.Read)

	var inbox []commerce.Message
	doJSON(t, srv, http.MethodGet, "/messages/inbox", bob.AccessToken, nil, &inbox)
	require.Len(t, inbox, 1)
	assert.Equal(t, alice.ID, inbox[0].SenderID)

	var conversation []commerce.Message
	doJSON(t, srv, http.MethodGet, "/messages/conversation/"+alice.ID, bob.AccessToken, nil, &conversation)
	assert.Len(t, conversation, 1)

	resp = doJSON(t, srv, http.MethodPatch, "/messages/"+sent.ID+"/read", bob.AccessToken, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	doJSON(t, srv, http.MethodGet, "/messages/inbox", bob.AccessToken, nil, &inbox)
	require.Len(t, inbox, 1)
	assert.True(t, inbox[0].Read)

	// Only the recipient can mark a message read.
	resp = doJSON(t, srv, http.MethodPatch, "/messages/"+sent.ID+"/read", alice.AccessToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ========== Reviews ==========

func TestReviewFlow(t *testing.T) {
	srv := newTestServer(t)
	user := registerUser(t, srv, "pat@example.com")
	productID := firstProductID(t, srv)

	var review catalog.Review
	resp := doJSON(t, srv, http.MethodPost, "/reviews", user.AccessToken, catalog.CreateReviewRequest{
		ProductID: productID,
		Rating:    5,
		Comment:   "My dog loves it.",
	}, &review)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, review.Rating)

	var list struct {
		Reviews []catalog.Review `json:"reviews"`
	}
	doJSON(t, srv, http.MethodGet, "/reviews/product/"+productID, "", nil, &list)
	require.Len(t, list.Reviews, 1)
	assert.Equal(t, "My dog loves it.", list.Reviews[0].Comment)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	resp := doJSON(t, srv, http.MethodGet, "/health", "", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}
