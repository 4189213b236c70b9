package httpserver

import (
	"log"
	"net/http"

	"coffeestore/internal/domain"
	catalogsvc "coffeestore/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(logger *log.Logger, svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(logger *log.Logger, svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func createProductHandler(logger *log.Logger, svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalogsvc.CreateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody(kindValidation, "invalid request body"))
			return
		}
		product, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func updateProductHandler(logger *log.Logger, svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalogsvc.UpdateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody(kindValidation, "invalid request body"))
			return
		}
		product, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func deleteProductHandler(logger *log.Logger, svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
