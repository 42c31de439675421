package handler

import (
	"net/http"

	"theme-park-ticketing/internal/model"
	"theme-park-ticketing/internal/service"
	"theme-park-ticketing/internal/session"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service  service.CatalogService
	sessions *session.Manager
}

func NewTicketHandler(service service.CatalogService, sessions *session.Manager) *TicketHandler {
	return &TicketHandler{service: service, sessions: sessions}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1", Auth(h.sessions))
	{
		router.GET("tickets", h.List)
	}
}

// TicketResponse 票券響應
type TicketResponse struct {
	Type            string  `json:"ticket_type"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
	Validity        string  `json:"validity"`
	Limitations     string  `json:"limitations"`
	Discount        int     `json:"discount"`
}

func toTicketResponse(t *model.Ticket) TicketResponse {
	return TicketResponse{
		Type:            t.Type,
		Description:     t.Description,
		Price:           t.Price,
		DiscountedPrice: t.DiscountedPrice(),
		Validity:        t.Validity,
		Limitations:     t.Limitations,
		Discount:        t.Discount,
	}
}

func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ticket_handler", "List")
		return
	}
	responses := make([]TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		responses = append(responses, toTicketResponse(ticket))
	}
	c.JSON(http.StatusOK, responses)
}
