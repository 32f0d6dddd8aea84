package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterly/internal/application/metadata"
	domain "caterly/internal/domain/metadata"
	"caterly/internal/shared/logger"
)

type mockLookupRepo struct {
	cuisineTypes  []*domain.CuisineType
	categories    []*domain.Category
	subCategories []*domain.SubCategory
	freeForms     []*domain.FreeForm
	packageTypes  []*domain.PackageType
	err           error

	gotCategoryID *uint
}

func (m *mockLookupRepo) ListCuisineTypes(_ context.Context) ([]*domain.CuisineType, error) {
	return m.cuisineTypes, m.err
}

func (m *mockLookupRepo) ListCategories(_ context.Context) ([]*domain.Category, error) {
	return m.categories, m.err
}

func (m *mockLookupRepo) ListSubCategories(_ context.Context, categoryID *uint) ([]*domain.SubCategory, error) {
	m.gotCategoryID = categoryID
	return m.subCategories, m.err
}

func (m *mockLookupRepo) ListFreeForms(_ context.Context) ([]*domain.FreeForm, error) {
	return m.freeForms, m.err
}

func (m *mockLookupRepo) ListPackageTypes(_ context.Context) ([]*domain.PackageType, error) {
	return m.packageTypes, m.err
}

func (m *mockLookupRepo) CuisineTypeExists(_ context.Context, _ uint) (bool, error) {
	return false, nil
}

func (m *mockLookupRepo) CategoryExists(_ context.Context, _ uint) (bool, error) {
	return false, nil
}

func (m *mockLookupRepo) GetSubCategory(_ context.Context, _ uint) (*domain.SubCategory, error) {
	return nil, nil
}

func (m *mockLookupRepo) PackageTypeExists(_ context.Context, _ uint) (bool, error) {
	return false, nil
}

func newMetadataTestEngine(repo *mockLookupRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger()
	h := NewMetadataHandler(metadata.NewService(repo, log), log)

	engine := gin.New()
	group := engine.Group("/caterer/metadata")
	group.GET("/cuisine-types", h.ListCuisineTypes)
	group.GET("/categories", h.ListCategories)
	group.GET("/subcategories", h.ListSubCategories)
	group.GET("/freeforms", h.ListFreeForms)
	group.GET("/package-types", h.ListPackageTypes)
	return engine
}

func metadataGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestMetadataHandler_Listings(t *testing.T) {
	repo := &mockLookupRepo{
		cuisineTypes: []*domain.CuisineType{{ID: 1, Name: "Lebanese"}, {ID: 2, Name: "Saudi"}},
		categories:   []*domain.Category{{ID: 2, Name: "Main"}},
		freeForms:    []*domain.FreeForm{{ID: 4, Name: "Buffet"}},
		packageTypes: []*domain.PackageType{{ID: 5, Name: "Wedding"}},
	}
	engine := newMetadataTestEngine(repo)

	w := metadataGet(engine, "/caterer/metadata/cuisine-types")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    []*domain.CuisineType `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Lebanese", resp.Data[0].Name)

	w = metadataGet(engine, "/caterer/metadata/categories")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Main")

	w = metadataGet(engine, "/caterer/metadata/freeforms")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Buffet")

	w = metadataGet(engine, "/caterer/metadata/package-types")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Wedding")
}

func TestMetadataHandler_SubCategories_Unfiltered(t *testing.T) {
	repo := &mockLookupRepo{
		subCategories: []*domain.SubCategory{{ID: 3, Name: "Grills", CategoryID: 2}},
	}
	engine := newMetadataTestEngine(repo)

	w := metadataGet(engine, "/caterer/metadata/subcategories")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, repo.gotCategoryID)
	assert.Contains(t, w.Body.String(), "Grills")
}

func TestMetadataHandler_SubCategories_CategoryFilter(t *testing.T) {
	repo := &mockLookupRepo{
		subCategories: []*domain.SubCategory{{ID: 3, Name: "Grills", CategoryID: 2}},
	}
	engine := newMetadataTestEngine(repo)

	w := metadataGet(engine, "/caterer/metadata/subcategories?category_id=2")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.gotCategoryID)
	assert.Equal(t, uint(2), *repo.gotCategoryID)
}

func TestMetadataHandler_SubCategories_InvalidCategoryFilter(t *testing.T) {
	repo := &mockLookupRepo{}
	engine := newMetadataTestEngine(repo)

	w := metadataGet(engine, "/caterer/metadata/subcategories?category_id=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, repo.gotCategoryID, "repository must not be queried on an invalid filter")
}

func TestMetadataHandler_RepositoryErrorIsHidden(t *testing.T) {
	repo := &mockLookupRepo{err: assert.AnError}
	engine := newMetadataTestEngine(repo)

	w := metadataGet(engine, "/caterer/metadata/cuisine-types")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
