package httpserver

import (
	"log"
	"net/http"

	"coffeestore/internal/domain"
	"coffeestore/internal/metrics"
	checkoutsvc "coffeestore/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

func placeOrderHandler(logger *log.Logger, svc checkoutService, m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutsvc.PlaceOrderInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody(kindValidation, "invalid request body"))
			return
		}
		order, err := svc.PlaceOrder(c.Request.Context(), ownerFrom(c), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if m != nil {
			m.OrdersCreated.Inc()
		}
		c.JSON(http.StatusCreated, order)
	}
}

func listOrdersHandler(logger *log.Logger, svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListOrders(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}
