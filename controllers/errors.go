package controllers

import (
	"errors"

	"orderapi/pkg/resp"
	"orderapi/services"
	"orderapi/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes; anything unknown is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrPhoneTaken),
		errors.Is(err, services.ErrItemNameTaken),
		errors.Is(err, services.ErrInvalidPrice):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCustomerInUse),
		errors.Is(err, services.ErrItemInUse):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
	}
	return id, ok
}
