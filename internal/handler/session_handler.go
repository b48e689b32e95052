package handler

import (
	"net/http"

	"taxengine/internal/middleware"
	"taxengine/internal/service"
	"taxengine/internal/session"
	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	rateService    service.RateService
	store          *session.Store
	issuer         *session.Issuer
	requireSession gin.HandlerFunc
	secureCookies  bool
}

func NewSessionHandler(rateService service.RateService, store *session.Store, issuer *session.Issuer, requireSession gin.HandlerFunc, secureCookies bool) *SessionHandler {
	return &SessionHandler{
		rateService:    rateService,
		store:          store,
		issuer:         issuer,
		requireSession: requireSession,
		secureCookies:  secureCookies,
	}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/session")
	group.Use(h.requireSession)
	{
		group.GET("", h.GetSession)
		group.DELETE("", h.EndSession)
	}
}

// GetSession reports the caller's session and refreshes its token
// @Summary      Get session
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.Response{data=service.SessionResponse}
// @Router       /api/session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	token, err := h.issuer.Issue(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	middleware.SetSessionCookie(c, token, h.issuer.TTL(), h.secureCookies)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.rateService.Describe(c.Request.Context(), middleware.RateSession(c))))
}

// EndSession discards the caller's session and its custom zip codes
// @Summary      End session
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/session [delete]
func (h *SessionHandler) EndSession(c *gin.Context) {
	h.store.Delete(middleware.SessionID(c))
	middleware.ClearSessionCookie(c, h.secureCookies)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"ended": true}))
}
