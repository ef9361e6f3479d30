package controllers

import (
	"orderapi/pkg/resp"
	"orderapi/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Svc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{Svc: svc}
}

// POST /customers
func (cc *CustomerController) Create(c *gin.Context) {
	var req services.CustomerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := cc.Svc.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": id, "message": "Customer created successfully."})
}

// GET /customers/:id
func (cc *CustomerController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	cust, err := cc.Svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, cust)
}

// PUT /customers/:id
func (cc *CustomerController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req services.CustomerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := cc.Svc.Update(id, &req); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "Customer updated successfully.")
}

// DELETE /customers/:id
func (cc *CustomerController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := cc.Svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "Customer deleted successfully.")
}
