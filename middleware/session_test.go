package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lokseva/models"
	"lokseva/services/user"
	"lokseva/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUserService resolves every token to a fixed session.
type stubUserService struct {
	user.UserService
	session *utils.Session
	err     error
}

func (s *stubUserService) SessionInfo(token string) (*utils.Session, error) {
	if token == "" {
		return nil, nil
	}
	return s.session, s.err
}

func TestExtractSessionToken(t *testing.T) {
	build := func(mutate func(*http.Request)) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		mutate(c.Request)
		return c
	}

	t.Run("cookie", func(t *testing.T) {
		c := build(func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-cookie"})
		})
		assert.Equal(t, "tok-cookie", ExtractSessionToken(c))
	})

	t.Run("bearer fallback", func(t *testing.T) {
		c := build(func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer tok-bearer")
		})
		assert.Equal(t, "tok-bearer", ExtractSessionToken(c))
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		c := build(func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-cookie"})
			r.Header.Set("Authorization", "Bearer tok-bearer")
		})
		assert.Equal(t, "tok-cookie", ExtractSessionToken(c))
	})

	t.Run("absent", func(t *testing.T) {
		c := build(func(r *http.Request) {})
		assert.Equal(t, "", ExtractSessionToken(c))
	})
}

func adminRouter(service user.UserService) *gin.Engine {
	router := gin.New()
	router.GET("/admin/ping", AdminOnlyMiddleware(service), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func performAdmin(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminOnlyMiddleware(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		router := adminRouter(&stubUserService{session: &utils.Session{UserID: "A1", Role: models.RoleAdmin}})
		w := performAdmin(router, "tok")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non admin rejected", func(t *testing.T) {
		router := adminRouter(&stubUserService{session: &utils.Session{UserID: "U1", Role: models.RoleUser}})
		w := performAdmin(router, "tok")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		router := adminRouter(&stubUserService{})
		w := performAdmin(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("session store failure", func(t *testing.T) {
		router := adminRouter(&stubUserService{err: errors.New("redis down")})
		w := performAdmin(router, "tok")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
