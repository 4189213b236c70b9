package httpserver

import (
	"log"
	"net/http"

	"coffeestore/internal/domain"
	bannersvc "coffeestore/internal/service/banner"
	"github.com/gin-gonic/gin"
)

func listBannersHandler(logger *log.Logger, svc bannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners, err := svc.ListActive(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if banners == nil {
			banners = []domain.Banner{}
		}
		c.JSON(http.StatusOK, banners)
	}
}

func createBannerHandler(logger *log.Logger, svc bannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bannersvc.CreateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody(kindValidation, "invalid request body"))
			return
		}
		banner, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, banner)
	}
}
