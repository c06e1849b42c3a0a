package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type MediaHandler struct {
	mediaService ports.MediaService
}

func NewMediaHandler(mediaService ports.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

type attachMediaRequest struct {
	PostID string `json:"post_id" validate:"required"`
	URL    string `json:"url"     validate:"required,url"`
	Type   string `json:"type"    validate:"required,oneof=IMAGE VIDEO"`
}

// Create attaches a media URL to a post.
//
// @Summary      Attach media to a post
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      attachMediaRequest  true  "Media details"
// @Success      201   {object}  domain.Media
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /media [post]
func (h *MediaHandler) Create(c echo.Context) error {
	var req attachMediaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, ok := domain.ParseMediaType(req.Type)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown media type")
	}

	media, err := h.mediaService.Attach(c.Request().Context(), req.PostID, req.URL, t)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, media)
}

// ListByPost returns the media attached to one post.
//
// @Summary      List media by post
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Post id"
// @Success      200  {array}  domain.Media
// @Failure      404  {object} map[string]string
// @Router       /media/post/{id} [get]
func (h *MediaHandler) ListByPost(c echo.Context) error {
	media, err := h.mediaService.ListByPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, media)
}
