package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRequest(t *testing.T) {
	body := `{"email": "a@b.com", "password": "password1"}`

	signup, err := decodeSignupRequest(httptest.NewRequest(http.MethodPost, "/user/signup", strings.NewReader(body)).Body)
	assert.NoError(t, err)
	assert.Equal(t, signupRequest{"a@b.com", "password1"}, signup)

	login, err := decodeLoginRequest(httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body)).Body)
	assert.NoError(t, err)
	assert.Equal(t, loginRequest{"a@b.com", "password1"}, login)
}

func TestSignupHandler(t *testing.T) {
	signupReq := `{"email":"a@b.com", "password":"password1"}`

	tests := []struct {
		req      string
		wantCode int
		wantMsg  string
		wantUser bool
	}{
		{req: `invalid request`, wantCode: http.StatusBadRequest},
		{req: `{"email": "ab.com", "password": "password"}`, wantCode: http.StatusUnprocessableEntity, wantMsg: ErrInvalidEmail.Error()},
		{req: `{"email": "a@b.com", "password": "pass"}`, wantCode: http.StatusUnprocessableEntity, wantMsg: ErrInvalidPassword.Error()},
		{req: signupReq, wantCode: http.StatusCreated, wantMsg: "User Signup Successfully", wantUser: true},
		{req: signupReq, wantCode: http.StatusConflict, wantMsg: ErrExistingEmail.Error()},
	}

	svc := NewService(NewAccountRepository())
	handler := SignupHandler(svc)

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.wantCode), func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/user/signup", strings.NewReader(tt.req))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			var res struct {
				Message string   `json:"message"`
				NewUser *Account `json:"newUser"`
			}
			_ = json.NewDecoder(strings.NewReader(w.Body.String())).Decode(&res)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, res.Message)

			// the hash must never appear in a response payload
			assert.NotContains(t, w.Body.String(), "password")
			assert.NotContains(t, w.Body.String(), "$2a$")

			if tt.wantUser {
				assert.NotNil(t, res.NewUser)
				assert.True(t, isValidID(string(res.NewUser.ID)))
				assert.Equal(t, "a@b.com", res.NewUser.Email)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	accounts := NewAccountRepository()
	svc := NewService(accounts)
	issuer := NewTokenIssuer([]byte("test-secret"))
	acc, err := svc.RegisterAccount(signupRequest{"a@b.com", "password1"})
	assert.NoError(t, err)

	tests := []struct {
		req       string
		wantCode  int
		wantMsg   string
		wantToken bool
	}{
		{req: `invalid request`, wantCode: http.StatusBadRequest},
		{req: `{"email":"a@b.com", "password":"password1"}`, wantCode: http.StatusCreated, wantMsg: "User LogIn Successfully", wantToken: true},
		{req: `{"email":"a@b.com", "password":"wrongpass"}`, wantCode: http.StatusUnauthorized, wantMsg: ErrInvalidCredentials.Error()},
		{req: `{"email":"who@b.com", "password":"password1"}`, wantCode: http.StatusUnauthorized, wantMsg: ErrInvalidCredentials.Error()},
	}

	handler := LoginHandler(svc, issuer)

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.wantCode), func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(tt.req))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			var res struct {
				Message string `json:"message"`
				Token   string `json:"token"`
			}
			_ = json.NewDecoder(w.Body).Decode(&res)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMsg, res.Message)

			if tt.wantToken {
				assert.NotEmpty(t, res.Token)

				id, err := issuer.Parse(res.Token)
				assert.NoError(t, err)
				assert.Equal(t, acc.ID, id)
			}
		})
	}
}
