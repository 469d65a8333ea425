package api

import (
	"net/http"

	"restaurant-reservation/internal/domain/principal"
	reqdto "restaurant-reservation/internal/handler/dto/request"
	resdto "restaurant-reservation/internal/handler/dto/response"
	"restaurant-reservation/internal/handler/httperr"
	"restaurant-reservation/internal/pkg/config"
	"restaurant-reservation/internal/pkg/cookie"
	"restaurant-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Customer sign up
// @Description Register a new customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign up request"
// @Success 201 {object} resdto.SignUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /customers/signup [post]
func (h *AuthHandler) CustomerSignUp(c *gin.Context) {
	h.signUp(c, principal.RoleCustomer)
}

// @Summary Manager sign up
// @Description Register a new restaurant manager account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign up request"
// @Success 201 {object} resdto.SignUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /managers/signup [post]
func (h *AuthHandler) ManagerSignUp(c *gin.Context) {
	h.signUp(c, principal.RoleManager)
}

// @Summary Customer sign in
// @Description Sign in as a customer; the access token is also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignInRequest true "Sign in request"
// @Success 200 {object} resdto.SignInResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /customers/signin [post]
func (h *AuthHandler) CustomerSignIn(c *gin.Context) {
	h.signIn(c, principal.RoleCustomer)
}

// @Summary Manager sign in
// @Description Sign in as a manager; the access token is also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignInRequest true "Sign in request"
// @Success 200 {object} resdto.SignInResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /managers/signin [post]
func (h *AuthHandler) ManagerSignIn(c *gin.Context) {
	h.signIn(c, principal.RoleManager)
}

// @Summary Current principal
// @Description Get the authenticated customer or manager
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromPrincipal(p))
}

func (h *AuthHandler) signUp(c *gin.Context, role principal.Role) {
	var req reqdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.cmds.SignUp(c.Request.Context(), req.ToInput(role))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.SignUpResponse{ID: id, Role: role.String()})
}

func (h *AuthHandler) signIn(c *gin.Context, role principal.Role) {
	var req reqdto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request format")
		return
	}

	res, err := h.cmds.SignIn(c.Request.Context(), req.ToInput(role))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, res.AccessToken, res.ExpiresIn)
	c.JSON(http.StatusOK, resdto.SignInResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(res.ExpiresIn.Seconds()),
		PrincipalID: res.PrincipalID,
		Role:        res.Role.String(),
	})
}
