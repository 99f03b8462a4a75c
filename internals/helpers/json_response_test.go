// file: internals/helpers/json_response_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	app := fiber.New()
	var got Paging
	app.Get("/probe", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging_Defaults(t *testing.T) {
	p := resolveFor(t, "/probe", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 20, p.Limit)
}

func TestResolvePaging_PageAndPerPage(t *testing.T) {
	p := resolveFor(t, "/probe?page=3&per_page=50", 20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.PerPage)
	assert.Equal(t, 100, p.Offset)
}

func TestResolvePaging_CapsAtMax(t *testing.T) {
	p := resolveFor(t, "/probe?per_page=500", 20, 100)
	assert.Equal(t, 100, p.PerPage)
}

func TestResolvePaging_LegacyLimitAlias(t *testing.T) {
	p := resolveFor(t, "/probe?limit=30", 20, 100)
	assert.Equal(t, 30, p.PerPage)
}

func TestResolvePaging_InvalidValuesFallBack(t *testing.T) {
	p := resolveFor(t, "/probe?page=-2&per_page=abc", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}
