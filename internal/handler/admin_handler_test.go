package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefazor/textback-landing/internal/service"
	"github.com/sefazor/textback-landing/pkg/utils"
)

func TestAdminLoginHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		admin  stubAdmin
		body   string
		status int
	}{
		{name: "ok", admin: stubAdmin{password: "hunter2"}, body: `{"password":"hunter2"}`, status: fiber.StatusOK},
		{name: "wrong password", admin: stubAdmin{password: "hunter2"}, body: `{"password":"nope"}`, status: fiber.StatusUnauthorized},
		{name: "missing password", admin: stubAdmin{password: "hunter2"}, body: `{}`, status: fiber.StatusBadRequest},
		{name: "disabled", admin: stubAdmin{err: service.ErrAdminDisabled}, body: `{"password":"x"}`, status: fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAdminHandler(tt.admin, utils.NewValidator())
			app := fiber.New()
			app.Post("/api/admin/login", h.Login)

			req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.status == fiber.StatusOK {
				var body struct {
					Data struct {
						Token string `json:"token"`
					} `json:"data"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, "signed-token", body.Data.Token)
			}
		})
	}
}
