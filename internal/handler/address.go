package handler

import (
	"context"
	"net/http"
	"strconv"

	"address-book-api/internal/models"

	"github.com/gin-gonic/gin"
)

// AddressHandler handles address CRUD requests
type AddressHandler struct {
	service AddressService
}

// AddressService interface for dependency injection
type AddressService interface {
	CreateAddress(context.Context, models.AddressInput) (*models.Address, error)
	ListAddresses(context.Context) ([]models.Address, error)
	GetAddress(context.Context, int64) (*models.Address, error)
	UpdateAddress(context.Context, int64, models.AddressPatch) (*models.Address, error)
	DeleteAddress(context.Context, int64) (*models.Address, error)
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(svc AddressService) *AddressHandler {
	return &AddressHandler{service: svc}
}

// CreateAddress handles POST /addresses/ requests
//
//	@Summary	Create an address
//	@Tags		addresses
//	@Accept		json
//	@Produce	json
//	@Param		address	body		models.AddressInput	true	"Address to create"
//	@Success	201		{object}	Response{data=models.Address}
//	@Failure	400		{object}	Response
//	@Failure	500		{object}	Response
//	@Router		/addresses/ [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var in models.AddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body", err.Error())
		return
	}

	addr, err := h.service.CreateAddress(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "create address")
		return
	}

	respondData(c, http.StatusCreated, addr)
}

// ListAddresses handles GET /addresses/ requests
//
//	@Summary	List all addresses
//	@Tags		addresses
//	@Produce	json
//	@Success	200	{object}	Response{data=[]models.Address}
//	@Failure	500	{object}	Response
//	@Router		/addresses/ [get]
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.service.ListAddresses(c.Request.Context())
	if err != nil {
		respondError(c, err, "list addresses")
		return
	}

	respondList(c, addresses)
}

// GetAddress handles GET /addresses/:id requests
//
//	@Summary	Get an address
//	@Tags		addresses
//	@Produce	json
//	@Param		id	path		int	true	"Address ID"
//	@Success	200	{object}	Response{data=models.Address}
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	500	{object}	Response
//	@Router		/addresses/{id} [get]
func (h *AddressHandler) GetAddress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	addr, err := h.service.GetAddress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get address")
		return
	}

	respondData(c, http.StatusOK, addr)
}

// UpdateAddress handles PUT /addresses/:id requests. Only the fields present in the body change.
//
//	@Summary	Update an address
//	@Tags		addresses
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Address ID"
//	@Param		address	body		models.AddressPatch	true	"Fields to change"
//	@Success	200		{object}	Response{data=models.Address}
//	@Failure	400		{object}	Response
//	@Failure	404		{object}	Response
//	@Failure	500		{object}	Response
//	@Router		/addresses/{id} [put]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.AddressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body", err.Error())
		return
	}

	addr, err := h.service.UpdateAddress(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "update address")
		return
	}

	respondMessage(c, "address updated successfully", addr)
}

// DeleteAddress handles DELETE /addresses/:id requests
//
//	@Summary	Delete an address
//	@Tags		addresses
//	@Produce	json
//	@Param		id	path		int	true	"Address ID"
//	@Success	200	{object}	Response{data=models.Address}
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	500	{object}	Response
//	@Router		/addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	addr, err := h.service.DeleteAddress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "delete address")
		return
	}

	respondMessage(c, "address deleted successfully", addr)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "invalid address id", "")
		return 0, false
	}
	return id, true
}
