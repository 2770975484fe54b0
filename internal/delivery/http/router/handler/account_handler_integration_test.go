package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beacon/config"
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/router"
	"beacon/internal/delivery/http/router/handler"
	"beacon/internal/delivery/http/validator"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/auth"
	"beacon/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryAccountRepo struct {
	accounts map[string]*entity.Account
}

func newMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{accounts: make(map[string]*entity.Account)}
}

func (r *memoryAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.ID == id {
			return account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if account, ok := r.accounts[email]; ok {
		return account, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepo) Create(_ context.Context, account *entity.Account) error {
	account.ID = uuid.New()
	r.accounts[account.Email] = account

	return nil
}

type memorySender struct {
	sent []string
}

func (s *memorySender) Send(_ context.Context, to, _ string) (string, error) {
	s.sent = append(s.sent, to)

	return "SMtest", nil
}

// newTestApp assembles a full echo application backed by an in-memory store,
// a real bcrypt hasher, and a real JWT service.
func newTestApp(t *testing.T) (*echo.Echo, *memorySender) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		SecretKey: "integration-test-secret",
		Auth:      &config.AuthConfig{},
	}

	repo := newMemoryAccountRepo()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	tokenService := auth.NewJWTService(cfg, logger)
	sender := &memorySender{}

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		AccountRepo:  repo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})
	sosUC := impl.NewSOSService(impl.SOSServiceParams{
		Sender: sender,
		Logger: logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		AccountHandler: handler.NewAccountHandler(accountUC, logger),
		SOSHandler:     handler.NewSOSHandler(sosUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenService),
	})
	r.RegisterRoutes(e)

	return e, sender
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountFlow_Integration(t *testing.T) {
	t.Parallel()

	e, _ := newTestApp(t)

	register := `{"name":"Ada","email":"ada@example.com","password":"hunter2","phoneNumber":"+15550001111"}`

	t.Run("register then login", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/auth/register", register, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Registration successful"}`, rec.Body.String())

		rec = doJSON(t, e, http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"hunter2"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Message string `json:"message"`
			Token   string `json:"token"`
			User    struct {
				Name        string `json:"name"`
				Email       string `json:"email"`
				PhoneNumber string `json:"phoneNumber"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Login successful", body.Message)
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "Ada", body.User.Name)
		assert.Equal(t, "+15550001111", body.User.PhoneNumber)
		assert.NotContains(t, rec.Body.String(), "passwordHash")
	})

	t.Run("registration without a name succeeds", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/auth/register", `{"email":"anon@example.com","password":"secret1"}`, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Registration successful"}`, rec.Body.String())

		rec = doJSON(t, e, http.MethodPost, "/api/auth/login", `{"email":"anon@example.com","password":"secret1"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":""`)
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/auth/register", register, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"User already exists"}`, rec.Body.String())
	})

	t.Run("unknown email and wrong password respond identically", func(t *testing.T) {
		recUnknown := doJSON(t, e, http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"hunter2"}`, "")
		recWrongPw := doJSON(t, e, http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"wrong"}`, "")

		assert.Equal(t, http.StatusBadRequest, recUnknown.Code)
		assert.Equal(t, http.StatusBadRequest, recWrongPw.Code)
		assert.Equal(t, recUnknown.Body.String(), recWrongPw.Body.String())
		assert.JSONEq(t, `{"message":"Invalid email or password"}`, recUnknown.Body.String())
	})

	t.Run("malformed registration body is rejected", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/auth/register", `{"email":"not-an-email","password":"x","name":"A"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid request body"}`, rec.Body.String())
	})
}

func TestPasswordReset_Integration(t *testing.T) {
	t.Parallel()

	e, _ := newTestApp(t)

	rec := doJSON(t, e, http.MethodPost, "/api/auth/reset", `{"email":"nobody@example.com"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())

	doJSON(t, e, http.MethodPost, "/api/auth/register", `{"name":"Ada","email":"ada@example.com","password":"hunter2"}`, "")

	rec = doJSON(t, e, http.MethodPost, "/api/auth/reset", `{"email":"ada@example.com"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Password reset link sent (mock)"}`, rec.Body.String())
}

func TestMe_Integration(t *testing.T) {
	t.Parallel()

	e, _ := newTestApp(t)

	doJSON(t, e, http.MethodPost, "/api/auth/register", `{"name":"Ada","email":"ada@example.com","password":"hunter2","phoneNumber":"+15550001111"}`, "")
	rec := doJSON(t, e, http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	t.Run("valid token returns profile", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/auth/me", "", login.Token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"Ada","email":"ada@example.com","phoneNumber":"+15550001111"}`, rec.Body.String())
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/auth/me", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/auth/me", "", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid or expired token"}`, rec.Body.String())
	})
}

func TestSOSBroadcast_Integration(t *testing.T) {
	t.Parallel()

	t.Run("broadcasts to all contacts", func(t *testing.T) {
		t.Parallel()

		e, sender := newTestApp(t)

		body := `{"message":"Emergency! I need help.","contacts":[{"name":"Mom","number":"+15550001111"},{"name":"Dad","number":"+15550002222"}]}`
		rec := doJSON(t, e, http.MethodPost, "/api/sos", body, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"sent":2}`, rec.Body.String())
		assert.Equal(t, []string{"+15550001111", "+15550002222"}, sender.sent)
	})

	t.Run("rejects empty contact list", func(t *testing.T) {
		t.Parallel()

		e, _ := newTestApp(t)

		rec := doJSON(t, e, http.MethodPost, "/api/sos", `{"message":"help","contacts":[]}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"No contacts provided"}`, rec.Body.String())
	})

	t.Run("skips contacts without numbers", func(t *testing.T) {
		t.Parallel()

		e, sender := newTestApp(t)

		body := `{"message":"help","contacts":[{"name":"NoPhone"},{"name":"Mom","number":"+15550001111"}]}`
		rec := doJSON(t, e, http.MethodPost, "/api/sos", body, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"sent":1}`, rec.Body.String())
		assert.Equal(t, []string{"+15550001111"}, sender.sent)
	})
}
