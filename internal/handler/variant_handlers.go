package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"continuum-server/internal/models"
)

func (h *Handler) createVariant(c *gin.Context) {
	var req createVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// Вариант без существующего ассета не имеет смысла
	if _, err := h.assets.GetByID(c.Request.Context(), req.AssetID); err != nil {
		h.handleError(c, err)
		return
	}

	variant := &models.Variant{
		Name:        req.Name,
		DeltaPrompt: req.DeltaPrompt,
		AssetID:     req.AssetID,
	}
	if err := h.variants.Create(c.Request.Context(), variant); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, variant)
}

func (h *Handler) getVariant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	variant, err := h.variants.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

func (h *Handler) updateVariant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	variant, err := h.variants.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if req.Name != nil {
		variant.Name = *req.Name
	}
	if req.DeltaPrompt != nil {
		variant.DeltaPrompt = *req.DeltaPrompt
	}
	if err := h.variants.Update(c.Request.Context(), variant); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

func (h *Handler) deleteVariant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.variants.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
