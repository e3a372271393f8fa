package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elisfemina/react-mesto-api-full/internal/service"
	"github.com/elisfemina/react-mesto-api-full/internal/transport/http/dto"
	"github.com/elisfemina/react-mesto-api-full/internal/transport/http/middleware"
	resp "github.com/elisfemina/react-mesto-api-full/internal/transport/http/response"
)

const tokenCookieMaxAge = 7 * 24 * 60 * 60 // 与 JWT 有效期对齐

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var in dto.SignupReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
		About:    in.About,
		Avatar:   in.Avatar,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"name":   u.Name,
		"about":  u.About,
		"avatar": u.Avatar,
		"email":  u.Email,
	}})
}

func (h *UserHandler) Signin(c *gin.Context) {
	var in dto.SigninReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	tok, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		resp.Err(c, err)
		return
	}
	// SameSite 必须显式指定
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("jwt", tok, tokenCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": tok})
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	var p dto.UserIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	u, err := h.svc.Get(c.Request.Context(), p.UserID)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.GetString(middleware.KeyUserID))
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var in dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.UpdateProfile(c.Request.Context(), c.GetString(middleware.KeyUserID), in.Name, in.About)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	var in dto.UpdateAvatarReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.UpdateAvatar(c.Request.Context(), c.GetString(middleware.KeyUserID), in.Avatar)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
