package controllers

import (
	"orderapi/pkg/resp"
	"orderapi/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// ===== Create Order =====

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.OrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, orderBody(out, "Order created successfully."))
}

// ===== Detail =====

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	o, err := oc.Svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, o)
}

// ===== Update / Delete =====

// PUT /orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req services.OrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orderBody(out, "Order updated successfully."))
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := oc.Svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "Order deleted successfully.")
}

// adjustments only appear when at least one price was corrected
func orderBody(out *services.OrderResult, msg string) gin.H {
	body := gin.H{"id": out.ID, "message": msg}
	if len(out.Adjustments) > 0 {
		body["adjustments"] = out.Adjustments
	}
	return body
}
