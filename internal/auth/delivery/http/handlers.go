package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-task-planner/pkg/response"
)

// SignIn godoc
// @Summary     Sign in with email and password
// @Description Signs in an existing user or registers the email on first use. The session token is returned and also set as a cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signInReq true "Credentials"
// @Success     200 {object} signInResp
// @Failure     400 {object} response.Resp "Invalid email or password length"
// @Failure     401 {object} response.Resp "Wrong password"
// @Router      /api/v1/auth/sign-in [POST]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignInReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SignIn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, out.Token, h.cookieConfig.MaxAge)
	response.OK(c, newSignInResp(out))
}

// SignOut godoc
// @Summary  Clear the session cookie
// @Tags     Auth
// @Produce  json
// @Success  200 {object} response.Resp "OK"
// @Router   /api/v1/auth/sign-out [POST]
func (h *handler) SignOut(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.OK(c, nil)
}

// Me godoc
// @Summary  Current user
// @Tags     Auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} userResp
// @Failure  401 {object} response.Resp "Unauthorized"
// @Router   /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

func (h *handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	if h.cookieConfig.Name == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieConfig.Name, value, maxAge, "/", h.cookieConfig.Domain, h.cookieConfig.Secure, true)
}
