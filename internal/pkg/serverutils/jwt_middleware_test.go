package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "operator-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", NewJwtMiddleware(secret), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("operator").(string))
	})
	return app
}

func TestJwtMiddleware(t *testing.T) {
	app := newApp("s3cret")

	cases := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signed(t, "other"), status: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc.def", status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + signed(t, "s3cret"), status: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestJwtMiddlewareEmptySecretRejects(t *testing.T) {
	app := newApp("")
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, "anything"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestValidateRequest(t *testing.T) {
	type body struct {
		Number  string `json:"number" validate:"required"`
		Message string `json:"message" validate:"required,max=10"`
	}

	assert.NoError(t, ValidateRequest(body{Number: "1", Message: "hi"}))

	err := ValidateRequest(body{Message: "this is far too long"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number failed on 'required'")
	assert.Contains(t, err.Error(), "message failed on 'max'")
}
