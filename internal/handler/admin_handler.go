package handler

import (
	"net/http"

	"theme-park-ticketing/internal/service"
	"theme-park-ticketing/internal/session"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	catalog  service.CatalogService
	reports  service.ReportService
	auth     service.AuthService
	sessions *session.Manager
}

func NewAdminHandler(
	catalog service.CatalogService,
	reports service.ReportService,
	auth service.AuthService,
	sessions *session.Manager,
) *AdminHandler {
	return &AdminHandler{catalog: catalog, reports: reports, auth: auth, sessions: sessions}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/admin", Auth(h.sessions), RequireRole(session.RoleAdmin))
	{
		router.PUT("discounts", h.UpdateDiscounts)
		router.PUT("tickets/:type/price", h.UpdatePrice)
		router.GET("sales", h.SalesReport)
		router.POST("admins", h.CreateAdmin)
		router.DELETE("admins/:id", h.DeleteAdmin)
		router.PUT("admins/:id/password", h.ChangeAdminPassword)
	}
}

// UpdateDiscountsRequest 批次折扣更新請求
type UpdateDiscountsRequest struct {
	Discounts map[string]int `json:"discounts" binding:"required"`
}

type UpdatePriceRequest struct {
	Price float64 `json:"price" binding:"required"`
}

type CreateAdminRequest struct {
	AdminID  string `json:"admin_id" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) UpdateDiscounts(c *gin.Context) {
	var req UpdateDiscountsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.catalog.UpdateDiscounts(c, req.Discounts); err != nil {
		handleError(c, err, "admin_handler", "UpdateDiscounts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discounts updated successfully"})
}

func (h *AdminHandler) UpdatePrice(c *gin.Context) {
	var req UpdatePriceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.catalog.UpdatePrice(c, c.Param("type"), req.Price); err != nil {
		handleError(c, err, "admin_handler", "UpdatePrice")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price updated successfully"})
}

func (h *AdminHandler) SalesReport(c *gin.Context) {
	report, err := h.reports.SalesReport(c)
	if err != nil {
		handleError(c, err, "admin_handler", "SalesReport")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.auth.CreateAdmin(c, req.AdminID, req.Password, req.Email); err != nil {
		handleError(c, err, "admin_handler", "CreateAdmin")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Admin account created successfully"})
}

func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	if err := h.auth.DeleteAdmin(c, c.Param("id")); err != nil {
		handleError(c, err, "admin_handler", "DeleteAdmin")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ChangeAdminPassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.auth.ChangeAdminPassword(c, c.Param("id"), req.Password); err != nil {
		handleError(c, err, "admin_handler", "ChangeAdminPassword")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
