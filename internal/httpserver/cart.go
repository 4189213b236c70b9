package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func getCartHandler(logger *log.Logger, svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.GetHydrated(c.Request.Context(), ownerFrom(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addCartItemHandler(logger *log.Logger, svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody(kindValidation, "productId is required"))
			return
		}
		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		cart, err := svc.AddItem(c.Request.Context(), ownerFrom(c), req.ProductID, quantity)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func updateCartItemHandler(logger *log.Logger, svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody(kindValidation, "quantity is required"))
			return
		}
		cart, err := svc.UpdateQuantity(c.Request.Context(), ownerFrom(c), c.Param("productId"), req.Quantity)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeCartItemHandler(logger *log.Logger, svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveItem(c.Request.Context(), ownerFrom(c), c.Param("productId"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
