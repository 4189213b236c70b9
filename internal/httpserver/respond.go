package httpserver

import (
	"errors"
	"log"
	"net/http"

	"coffeestore/internal/domain"
	"github.com/gin-gonic/gin"
)

// Failure kinds the client can act on. Every 4xx response names one so the UI
// can say "your cart is empty" rather than a generic error.
const (
	kindValidation       = "VALIDATION"
	kindInvalidQuantity  = "INVALID_QUANTITY"
	kindItemNotFound     = "ITEM_NOT_FOUND"
	kindNotFound         = "NOT_FOUND"
	kindEmptyCart        = "EMPTY_CART"
	kindUnresolvableItem = "UNRESOLVABLE_ITEM"
	kindInternal         = "INTERNAL"
)

func errorBody(kind, message string) gin.H {
	return gin.H{"error": gin.H{"kind": kind, "message": message}}
}

// respondError maps domain errors onto status codes and machine-readable
// kinds. Anything unrecognized is an infrastructure failure: logged in full,
// returned opaque.
func respondError(c *gin.Context, logger *log.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, errorBody(kindInvalidQuantity, err.Error()))
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, errorBody(kindValidation, err.Error()))
	case errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, errorBody(kindItemNotFound, err.Error()))
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, errorBody(kindEmptyCart, err.Error()))
	case errors.Is(err, domain.ErrUnresolvableItem):
		c.JSON(http.StatusConflict, errorBody(kindUnresolvableItem, err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody(kindNotFound, err.Error()))
	default:
		logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, errorBody(kindInternal, "internal error"))
	}
}
