package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
)

func newLoginHandler(t *testing.T) *AuthHandler {
	t.Helper()
	creds, err := auth.NewCredentials("adminsmey", "s3cret!")
	if err != nil {
		t.Fatalf("new credentials: %v", err)
	}
	return NewAuthHandler(creds, discardLogger())
}

func runLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	h.Login(c)
	return w
}

func TestLoginSuccess(t *testing.T) {
	h := newLoginHandler(t)

	w := runLogin(t, h, `{"username":"adminsmey","password":"s3cret!"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success=true, body=%s", w.Body.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newLoginHandler(t)

	bodies := []string{
		`{"username":"adminsmey","password":"wrong"}`,
		`{"username":"nobody","password":"s3cret!"}`,
		`{"username":"Adminsmey","password":"s3cret!"}`,
		`{"username":"adminsmey","password":"S3CRET!"}`,
		`{}`,
		`not json`,
	}
	for _, body := range bodies {
		w := runLogin(t, h, body)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("body %s: expected 401, got %d", body, w.Code)
		}

		var resp struct {
			Success bool `json:"success"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("body %s: decode response: %v", body, err)
		}
		if resp.Success {
			t.Fatalf("body %s: expected success=false", body)
		}
	}
}
