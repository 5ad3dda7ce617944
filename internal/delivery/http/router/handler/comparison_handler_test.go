package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pricefield/internal/infra/persistence/kv"
	"pricefield/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonHandler_CompareEmptyInputYieldsEmptyGrid(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	store := kv.NewMemStore(logger)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	comparisonUC := impl.NewComparisonService(impl.ComparisonServiceParams{
		ProductRepo:     kv.NewProductRepository(store),
		ShopRepo:        kv.NewShopRepository(store),
		ShopProductRepo: kv.NewShopProductRepository(store),
	})

	handler := &ComparisonHandler{
		comparisonUC: comparisonUC,
		logger:       logger,
	}

	// Create Echo context
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(`{"product_ids":[],"shop_ids":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Empty id lists are not a validation error; the grid is simply empty.
	require.NoError(t, handler.Compare(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"cells":[]`)
	assert.Contains(t, responseBody, `"success":true`)
}
