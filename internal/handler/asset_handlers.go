package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"continuum-server/internal/models"
	"continuum-server/internal/repository"
)

func (h *Handler) listAssets(c *gin.Context) {
	var filter repository.AssetFilter

	if raw, ok := c.GetQuery("project_id"); ok {
		projectID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "invalid project_id"})
			return
		}
		filter.ProjectID = &projectID
	}
	if raw, ok := c.GetQuery("type"); ok {
		assetType := models.AssetType(raw)
		if !assetType.IsValid() {
			c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "invalid asset type"})
			return
		}
		filter.Type = &assetType
	}
	if raw, ok := c.GetQuery("is_global"); ok {
		isGlobal, err := strconv.ParseBool(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "invalid is_global"})
			return
		}
		filter.IsGlobal = &isGlobal
	}

	assets, err := h.assets.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

func (h *Handler) createAsset(c *gin.Context) {
	var req createAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !req.Type.IsValid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "invalid asset type"})
		return
	}

	asset := &models.Asset{
		Name:       req.Name,
		Type:       req.Type,
		BasePrompt: req.BasePrompt,
		IsGlobal:   req.IsGlobal,
		ProjectID:  req.ProjectID,
	}
	if err := h.assets.Create(c.Request.Context(), asset); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

func (h *Handler) getAsset(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	asset, err := h.assets.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	variants, err := h.variants.ListByAsset(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if variants == nil {
		variants = []models.Variant{}
	}
	c.JSON(http.StatusOK, assetDetailResponse{Asset: *asset, Variants: variants})
}

func (h *Handler) updateAsset(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	asset, err := h.assets.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.BasePrompt != nil {
		asset.BasePrompt = *req.BasePrompt
	}
	if err := h.assets.Update(c.Request.Context(), asset); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *Handler) deleteAsset(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.assets.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
