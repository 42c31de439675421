package handler

import (
	"net/http"

	"theme-park-ticketing/internal/model"
	"theme-park-ticketing/internal/service"
	"theme-park-ticketing/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service  service.AuthService
	sessions *session.Manager
}

func NewAuthHandler(service service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("auth/signup", h.Signup)
		router.POST("auth/login", h.Login)
	}
	authed := r.Group("/api/v1", Auth(h.sessions))
	{
		authed.POST("auth/logout", h.Logout)
		authed.PUT("account", h.UpdateAccount)
		authed.DELETE("account", h.DeleteAccount)
	}
}

// SignupRequest 註冊請求
type SignupRequest struct {
	Role     string `json:"role" binding:"required"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest 登入請求
type LoginRequest struct {
	Role     string `json:"role" binding:"required"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateAccountRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	err := h.service.Signup(c, session.Role(req.Role), req.Username, req.Password, req.Email)
	if err != nil {
		handleError(c, err, "auth_handler", "Signup")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	sess, err := h.service.Login(c, session.Role(req.Role), req.Username, req.Password)
	if err != nil {
		handleError(c, err, "auth_handler", "Login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": sess.Token, "role": sess.Role})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := CurrentSession(c)
	h.service.Logout(c, sess.Token)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	var req UpdateAccountRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	update := model.AccountUpdate{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if err := h.service.UpdateAccount(c, CurrentSession(c), update); err != nil {
		handleError(c, err, "auth_handler", "UpdateAccount")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account updated successfully"})
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	sess := CurrentSession(c)
	if err := h.service.DeleteAccount(c, sess); err != nil {
		handleError(c, err, "auth_handler", "DeleteAccount")
		return
	}
	h.sessions.Delete(sess.Token)
	c.Status(http.StatusNoContent)
}
