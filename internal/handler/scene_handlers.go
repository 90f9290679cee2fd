package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"continuum-server/internal/models"
)

// defaultStyleName — глобальный стиль, который подставляется при генерации,
// если ни запрос, ни сцена стиль не задали.
const defaultStyleName = "Cinematic"

func (h *Handler) listScenes(c *gin.Context) {
	var projectID *int64
	if raw, ok := c.GetQuery("project_id"); ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "invalid project_id"})
			return
		}
		projectID = &parsed
	}

	scenes, err := h.scenes.List(c.Request.Context(), projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenes)
}

func (h *Handler) createScene(c *gin.Context) {
	var req createSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	scene := &models.Scene{
		Name:       req.Name,
		ActionText: req.ActionText,
		ProjectID:  req.ProjectID,
		ShotTypeID: req.ShotTypeID,
		StyleID:    req.StyleID,
		LightingID: req.LightingID,
	}
	if err := h.scenes.Create(c.Request.Context(), scene); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, scene)
}

func (h *Handler) getScene(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	scene, err := h.scenes.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, scene)
}

func (h *Handler) updateScene(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	scene, err := h.scenes.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if req.Name != nil {
		scene.Name = *req.Name
	}
	if req.ActionText != nil {
		scene.ActionText = *req.ActionText
	}
	if req.ShotTypeID != nil {
		scene.ShotTypeID = req.ShotTypeID
	}
	if req.StyleID != nil {
		scene.StyleID = req.StyleID
	}
	if req.LightingID != nil {
		scene.LightingID = req.LightingID
	}
	if err := h.scenes.Update(c.Request.Context(), scene); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, scene)
}

func (h *Handler) deleteScene(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.scenes.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// generateScenePrompt собирает контекст сцены, прогоняет его через LLM и
// сохраняет результат на сцене. Освещение из запроса фиксируется на сцене до
// сборки, чтобы участвовать в ней.
func (h *Handler) generateScenePrompt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req generatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	scene, err := h.scenes.GetByID(ctx, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	styleID, err := h.resolveStyleID(c, req.StyleID, scene)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if req.LightingID != nil {
		scene.LightingID = req.LightingID
	}

	sceneCtx, err := h.aggregator.Aggregate(ctx, scene, styleID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	generated, err := h.assembler.AssembleScene(ctx, sceneCtx, "")
	if err != nil {
		h.handleError(c, err)
		return
	}

	scene.GeneratedPrompt = generated
	if err := h.scenes.Update(ctx, scene); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, scene)
}

// resolveStyleID выбирает стиль генерации: запрос, затем сцена, затем
// глобальный стиль по умолчанию. Отсутствие последнего — не ошибка.
func (h *Handler) resolveStyleID(c *gin.Context, requested *int64, scene *models.Scene) (*int64, error) {
	if requested != nil {
		return requested, nil
	}
	if scene.StyleID != nil {
		return scene.StyleID, nil
	}

	defaultStyle, err := h.assets.FindGlobalByTypeAndName(c.Request.Context(), models.AssetTypeStyle, defaultStyleName)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.logger.Debug("Default style asset not found", zap.String("name", defaultStyleName))
			return nil, nil
		}
		return nil, err
	}
	return &defaultStyle.ID, nil
}
