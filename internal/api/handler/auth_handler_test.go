package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, identifier, password string) (*ports.LoginResult, error)
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.AccountData, error)
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, identifier, password)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AccountData, error) {
	return s.registerFn(ctx, input)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, identifier, password string) (*ports.LoginResult, error) {
			if identifier != "12345678909" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", identifier, password)
			}
			return &ports.LoginResult{
				Account: ports.AccountData{ID: 1, Username: "alice", Role: domain.RoleAuthor},
				Token:   "signed-token",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"auth":"12345678909","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["token"] != "signed-token" {
		t.Fatalf("unexpected token payload: %+v", data)
	}
	account, ok := data["account"].(map[string]any)
	if !ok || account["username"] != "alice" {
		t.Fatalf("unexpected account payload: %+v", data)
	}
	if _, leaked := account["password"]; leaked {
		t.Fatalf("password leaked in response")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"auth":"alice","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.LoginResult, error) {
			t.Fatalf("service should not be reached")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"auth":"alice"}`)
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.AccountData, error) {
			if input.Username != "alice" || input.Role != domain.RoleAuthor {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.BirthDate.Format("2006-01-02") != "1990-05-10" {
				t.Fatalf("birth date not parsed: %v", input.BirthDate)
			}
			return &ports.AccountData{ID: 1, Username: input.Username, Role: input.Role}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := `{"username":"alice","national_id":"12345678909","email":"alice@example.com",` +
		`"registration_number":"REG-1","name":"Alice","password":"s3cret",` +
		`"birth_date":"1990-05-10","role":"author"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/sign-up", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_AdminPassesThroughToService(t *testing.T) {
	// Role validation accepts "admin" at the transport layer so the service
	// can answer with its own escalation error.
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.AccountData, error) {
			return nil, domain.ErrPrivilegeEscalation
		},
	}
	h := NewAuthHandler(stub)

	body := `{"username":"mallory","national_id":"12345678909","email":"m@example.com",` +
		`"registration_number":"REG-2","name":"Mallory","password":"s3cret",` +
		`"birth_date":"1990-05-10","role":"admin"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/sign-up", body)
	if err := h.Register(c); !errors.Is(err, domain.ErrPrivilegeEscalation) {
		t.Fatalf("expected ErrPrivilegeEscalation, got %v", err)
	}
}

func TestAuthHandler_Register_BadBirthDate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.AccountData, error) {
			t.Fatalf("service should not be reached")
			return nil, nil
		},
	})

	body := `{"username":"alice","national_id":"12345678909","email":"alice@example.com",` +
		`"registration_number":"REG-1","name":"Alice","password":"s3cret",` +
		`"birth_date":"10/05/1990","role":"author"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/sign-up", body)
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Logout_AlwaysSucceeds(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
