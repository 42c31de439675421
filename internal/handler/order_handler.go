package handler

import (
	"net/http"

	"theme-park-ticketing/internal/model"
	"theme-park-ticketing/internal/service"
	"theme-park-ticketing/internal/session"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service  service.OrderService
	sessions *session.Manager
}

func NewOrderHandler(service service.OrderService, sessions *session.Manager) *OrderHandler {
	return &OrderHandler{service: service, sessions: sessions}
}

func (h *OrderHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1", Auth(h.sessions), RequireRole(session.RoleCustomer))
	{
		router.GET("orders", h.History)
	}
}

// OrderResponse 訂單響應
type OrderResponse struct {
	ID           int            `json:"order_id"`
	PurchaseDate string         `json:"purchase_date"`
	Status       string         `json:"status"`
	TotalPrice   float64        `json:"total_price"`
	Tickets      []model.Ticket `json:"tickets"`
	Payment      *model.Payment `json:"payment,omitempty"`
}

func toOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		PurchaseDate: o.DateKey(),
		Status:       string(o.Status),
		TotalPrice:   o.TotalPrice,
		Tickets:      o.Tickets,
		Payment:      o.Payment,
	}
}

func (h *OrderHandler) History(c *gin.Context) {
	orders, err := h.service.History(c, CurrentSession(c))
	if err != nil {
		handleError(c, err, "order_handler", "History")
		return
	}
	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, responses)
}
