package controllers

import (
	"orderapi/pkg/resp"
	"orderapi/services"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	Svc *services.ItemService
}

func NewItemController(svc *services.ItemService) *ItemController {
	return &ItemController{Svc: svc}
}

// POST /items
func (ic *ItemController) Create(c *gin.Context) {
	var req services.ItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := ic.Svc.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": id, "message": "Item created successfully."})
}

// GET /items/:id
func (ic *ItemController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	it, err := ic.Svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, it)
}

// PUT /items/:id
func (ic *ItemController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req services.ItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ic.Svc.Update(id, &req); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "Item updated successfully.")
}

// DELETE /items/:id
func (ic *ItemController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := ic.Svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "Item deleted successfully.")
}
