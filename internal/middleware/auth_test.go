package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bloodlink/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newProtectedRouter(t *testing.T, bypass bool, adminOnly bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := token.NewManager(testSecret)
	router := gin.New()
	handlers := []gin.HandlerFunc{RequireAuth(tokens, bypass, zap.NewNop())}
	if adminOnly {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		ident, ok := IdentityFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": ident.ID, "role": ident.Role})
	})
	router.GET("/protected", handlers...)
	return router
}

func issue(t *testing.T, id int64, role string) string {
	t.Helper()
	signed, _, err := token.NewManager(testSecret).Issue(id, role)
	require.NoError(t, err)
	return signed
}

func doGet(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	w := doGet(newProtectedRouter(t, false, false), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "No token provided")
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router := newProtectedRouter(t, false, false)

	for _, header := range []string{"garbage", "Bearer a b", "Basic " + issue(t, 1, "user")} {
		w := doGet(router, map[string]string{"Authorization": header})
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		require.Contains(t, w.Body.String(), "Invalid token format")
	}
}

func TestRequireAuthBadSignature(t *testing.T) {
	signed, _, err := token.NewManager("other-secret").Issue(1, "user")
	require.NoError(t, err)

	w := doGet(newProtectedRouter(t, false, false), map[string]string{"Authorization": "Bearer " + signed})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid token")
}

func TestRequireAuthSetsIdentity(t *testing.T) {
	w := doGet(newProtectedRouter(t, false, false), map[string]string{
		"Authorization": "Bearer " + issue(t, 7, "user"),
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"id":"7"`)
	require.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestRequireAdminRejectsUserToken(t *testing.T) {
	w := doGet(newProtectedRouter(t, false, true), map[string]string{
		"Authorization": "Bearer " + issue(t, 7, "user"),
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Admin access required")
}

func TestRequireAdminAllowsAdminToken(t *testing.T) {
	w := doGet(newProtectedRouter(t, false, true), map[string]string{
		"Authorization": "Bearer " + issue(t, 1, "admin"),
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestBypassTrustsHeaders(t *testing.T) {
	router := newProtectedRouter(t, true, false)

	w := doGet(router, map[string]string{"X-User-ID": "42", "X-User-Role": "admin"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"id":"42"`)
	require.Contains(t, w.Body.String(), `"role":"admin"`)

	// Role defaults to user when the header is absent.
	w = doGet(router, map[string]string{"X-User-ID": "42"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"role":"user"`)

	// No id header means no identity, even in bypass mode.
	w = doGet(router, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentityOwns(t *testing.T) {
	user := Identity{ID: "7", Role: "user"}
	require.True(t, user.Owns(7))
	require.False(t, user.Owns(9))

	admin := Identity{ID: "1", Role: "admin"}
	require.True(t, admin.Owns(7))
	require.True(t, admin.Owns(9))
}
