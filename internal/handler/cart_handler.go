package handler

import (
	"net/http"

	"theme-park-ticketing/internal/model"
	"theme-park-ticketing/internal/service"
	"theme-park-ticketing/internal/session"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	service  service.OrderService
	sessions *session.Manager
}

func NewCartHandler(service service.OrderService, sessions *session.Manager) *CartHandler {
	return &CartHandler{service: service, sessions: sessions}
}

func (h *CartHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1", Auth(h.sessions), RequireRole(session.RoleCustomer))
	{
		router.GET("cart", h.View)
		router.POST("cart/items", h.AddItem)
		router.DELETE("cart/items/:type", h.RemoveItem)
		router.DELETE("cart", h.Clear)
		router.POST("checkout", h.Checkout)
	}
}

// AddCartItemRequest 加入購物車請求
type AddCartItemRequest struct {
	TicketType string `json:"ticket_type" binding:"required"`
}

// CheckoutRequest 結帳請求
type CheckoutRequest struct {
	Method     string `json:"payment_method" binding:"required"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CCV        string `json:"ccv"`
}

func (h *CartHandler) View(c *gin.Context) {
	items, total, err := h.service.CartItems(c, CurrentSession(c))
	if err != nil {
		handleError(c, err, "cart_handler", "View")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	snapshot, err := h.service.AddToCart(c, CurrentSession(c), req.TicketType)
	if err != nil {
		handleError(c, err, "cart_handler", "AddItem")
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	ticketType := c.Param("type")
	if err := h.service.RemoveFromCart(c, CurrentSession(c), ticketType); err != nil {
		handleError(c, err, "cart_handler", "RemoveItem")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.service.ClearCart(c, CurrentSession(c)); err != nil {
		handleError(c, err, "cart_handler", "Clear")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	details := service.PaymentDetails{
		Method:     model.PaymentMethod(req.Method),
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CCV:        req.CCV,
	}
	order, err := h.service.Checkout(c, CurrentSession(c), details)
	if err != nil {
		handleError(c, err, "cart_handler", "Checkout")
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}
