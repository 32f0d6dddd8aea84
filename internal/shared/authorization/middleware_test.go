package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"caterly/internal/shared/constants"
)

func TestParseUserRole(t *testing.T) {
	role, ok := ParseUserRole("CATERER")
	assert.True(t, ok)
	assert.Equal(t, RoleCaterer, role)

	_, ok = ParseUserRole("caterer")
	assert.False(t, ok)

	_, ok = ParseUserRole("MANAGER")
	assert.False(t, ok)

	_, ok = ParseUserRole("")
	assert.False(t, ok)
}

func performWithRole(role string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/probe", func(c *gin.Context) {
		if role != "" {
			c.Set(constants.ContextKeyUserRole, role)
		}
		c.Next()
	}, handler, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireCaterer_AllowsCaterer(t *testing.T) {
	w := performWithRole("CATERER", RequireCaterer())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireCaterer_RejectsOtherRoles(t *testing.T) {
	for _, role := range []string{"USER", "ADMIN", ""} {
		w := performWithRole(role, RequireCaterer())
		assert.Equal(t, http.StatusForbidden, w.Code, "role %q", role)
	}
}

func TestRequireRoles_AllowList(t *testing.T) {
	w := performWithRole("ADMIN", RequireRoles(RoleAdmin, RoleCaterer))
	assert.Equal(t, http.StatusOK, w.Code)

	w = performWithRole("USER", RequireRoles(RoleAdmin, RoleCaterer))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
