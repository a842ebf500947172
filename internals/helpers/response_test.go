package helper

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(body) > 0 {
		require.NoError(t, json.Unmarshal(body, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestJsonOK(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "fetched", fiber.Map{"n": 1})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "fetched", body["message"])
	assert.Equal(t, float64(200), body["code"])
}

func TestJsonDeletedHasNoBody(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return JsonDeleted(c)
	})
	assert.Equal(t, fiber.StatusNoContent, status)
	assert.Nil(t, body)
}

func TestJsonMultiStatus(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return JsonMultiStatus(c, "some failed", []string{"ok"}, []string{"bad row"})
	})
	assert.Equal(t, fiber.StatusMultiStatus, status)
	assert.Equal(t, "partial", body["status"])
	assert.NotNil(t, body["data"])
	assert.NotNil(t, body["errors"])
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	v := validator.New()
	err := v.Struct(payload{Email: "not-an-email"})
	require.Error(t, err)

	status, body := perform(t, func(c *fiber.Ctx) error {
		return ValidationError(c, err)
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "required", fields["Name"])
	assert.Equal(t, "email", fields["Email"])
}

func TestValidationErrorNonValidator(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return ValidationError(c, assert.AnError)
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid input", body["message"])
}
