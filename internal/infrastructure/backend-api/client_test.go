package backendapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/khangviet/storefront/config"
	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/dto"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/stretchr/testify/suite"
)

type memoryTokenStore struct {
	mu      sync.Mutex
	creds   Credentials
	cleared bool
}

func (m *memoryTokenStore) Load(ctx context.Context) (Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creds, nil
}

func (m *memoryTokenStore) Save(ctx context.Context, creds Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = creds
	return nil
}

func (m *memoryTokenStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = Credentials{}
	m.cleared = true
	return nil
}

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mux      *http.ServeMux
	client   *Client
	store    *memoryTokenStore
	refreshs atomic.Int32
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.client = CreateNewClientWithHTTP(config.BackendConfig{BaseURL: s.server.URL, RefreshPath: "/auth/refresh"}, s.server.Client())
	s.store = &memoryTokenStore{creds: Credentials{AccessToken: "stale", RefreshToken: "r1", Role: "admin"}}
	s.refreshs.Store(0)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) ctx() context.Context {
	return ContextWithTokenStore(context.Background(), s.store)
}

func (s *ClientTestSuite) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	s.Require().NoError(json.NewEncoder(w).Encode(v))
}

func (s *ClientTestSuite) Test_RefreshesOnceAndRetries() {
	s.mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		s.refreshs.Add(1)
		cookie, err := r.Cookie(RefreshTokenCookie)
		s.Require().NoError(err)
		s.Equal("r1", cookie.Value)

		http.SetCookie(w, &http.Cookie{Name: RefreshTokenCookie, Value: "r2"})
		s.writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: "fresh", TokenType: "bearer"})
	})
	s.mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
			return
		}
		s.writeJSON(w, http.StatusOK, []dto.OrderRecord{{MongoID: "o1", Status: "pending"}})
	})

	orders, err := s.client.ListOrders(s.ctx(), "", "")
	s.Require().NoError(err)
	s.Len(orders, 1)
	s.Equal("o1", orders[0].ID)
	s.Equal(int32(1), s.refreshs.Load())

	creds, _ := s.store.Load(context.Background())
	s.Equal("fresh", creds.AccessToken)
	s.Equal("r2", creds.RefreshToken)
	s.Equal("admin", creds.Role)
}

func (s *ClientTestSuite) Test_RefreshFailureClearsTokensWithoutSecondRetry() {
	var orderCalls atomic.Int32
	s.mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		s.refreshs.Add(1)
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid refresh token"})
	})
	s.mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		orderCalls.Add(1)
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "expired"})
	})

	_, err := s.client.ListOrders(s.ctx(), "", "")
	s.ErrorIs(err, errs.ErrSessionExpired)
	s.Equal(int32(1), s.refreshs.Load())
	s.Equal(int32(1), orderCalls.Load())
	s.True(s.store.cleared)
	creds, _ := s.store.Load(context.Background())
	s.False(creds.Authenticated())
}

func (s *ClientTestSuite) Test_SecondUnauthorizedIsNotRefreshedAgain() {
	var orderCalls atomic.Int32
	s.mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		s.refreshs.Add(1)
		s.writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: "fresh"})
	})
	s.mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		orderCalls.Add(1)
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not an admin"})
	})

	_, err := s.client.ListOrders(s.ctx(), "", "")
	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(http.StatusUnauthorized, apiErr.Status)
	s.Equal(int32(1), s.refreshs.Load())
	s.Equal(int32(2), orderCalls.Load())
}

func (s *ClientTestSuite) Test_LoginIsNeverRefreshed() {
	s.mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		s.refreshs.Add(1)
	})
	s.mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(r.ParseForm())
		if r.PostForm.Get("username") == "admin@khangviet.vn" && r.PostForm.Get("password") == "secret" {
			http.SetCookie(w, &http.Cookie{Name: RefreshTokenCookie, Value: "r-login"})
			s.writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: "a-login", TokenType: "bearer", Role: "admin"})
			return
		}
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
	})

	_, err := s.client.Login(s.ctx(), "admin@khangviet.vn", "wrong")
	s.ErrorIs(err, errs.ErrInvalidCredentials)
	s.Equal(int32(0), s.refreshs.Load())

	creds, err := s.client.Login(s.ctx(), "admin@khangviet.vn", "secret")
	s.Require().NoError(err)
	s.Equal(Credentials{AccessToken: "a-login", RefreshToken: "r-login", Role: "admin"}, creds)
}

func (s *ClientTestSuite) Test_PublicRequestsCarryNoToken() {
	s.mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.Header.Get("Authorization"))
		s.writeJSON(w, http.StatusOK, []dto.ProductRecord{{MongoID: "p1", Name: "Neon", ImageURL: "https://img/1.jpg"}})
	})

	products, err := s.client.ListProducts(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"https://img/1.jpg"}, products[0].Images)
}

func (s *ClientTestSuite) Test_BearerTokenIsAttached() {
	s.mux.HandleFunc("/orders/o1", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer stale", r.Header.Get("Authorization"))
		s.Equal(http.MethodPatch, r.Method)

		var body dto.OrderStatusRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal(domain.OrderStatusReady, body.Status)
		s.writeJSON(w, http.StatusOK, dto.OrderRecord{MongoID: "o1", Status: "ready"})
	})

	order, err := s.client.UpdateOrderStatus(s.ctx(), "o1", domain.OrderStatusReady)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusReady, order.Status)
}

func (s *ClientTestSuite) Test_ErrorDetailParsing() {
	s.mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"detail": []map[string]interface{}{
				{"loc": []interface{}{"body", "price"}, "msg": "field required"},
				{"loc": []interface{}{"body", "options", 0, "name"}, "msg": "str type expected"},
			},
		})
	})
	s.mux.HandleFunc("/categories/", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Slug already exists."})
	})
	s.mux.HandleFunc("/companies", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weird"})
	})
	s.mux.HandleFunc("/projects/featured", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	})

	err := s.client.CreateProduct(s.ctx(), domain.Product{Name: "x"})
	s.EqualError(err, "body.price: field required\nbody.options.0.name: str type expected")
	s.Equal(http.StatusUnprocessableEntity, errs.GetErrorStatusCode(err))

	err = s.client.CreateCategory(s.ctx(), domain.Category{Name: "Neon", Slug: "neon"})
	s.EqualError(err, "Slug already exists.")

	err = s.client.CreateCompany(s.ctx(), domain.Company{Name: "Acme"})
	s.JSONEq(`{"error":"weird"}`, err.Error())

	_, err = s.client.FeaturedProjects(s.ctx())
	s.EqualError(err, "Internal Server Error")
	s.Equal(http.StatusBadGateway, errs.GetErrorStatusCode(err))
}

func (s *ClientTestSuite) Test_NetworkFailureIsBadGateway() {
	s.server.Close()

	_, err := s.client.ListCategories(context.Background())
	s.ErrorIs(err, errs.ErrBadGateway)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
