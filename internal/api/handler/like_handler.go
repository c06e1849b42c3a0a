package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type LikeHandler struct {
	likeService ports.LikeService
}

func NewLikeHandler(likeService ports.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

type createLikeRequest struct {
	PostID string `json:"post_id" validate:"required"`
}

// Create records a like by the authenticated principal.
//
// @Summary      Like a post
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLikeRequest  true  "Post to like"
// @Success      201   {object}  domain.Like
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /likes [post]
func (h *LikeHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	like, err := h.likeService.Create(c.Request().Context(), p.ID, req.PostID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, like)
}

// ListByPost returns the likes on one post.
//
// @Summary      List likes by post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Post id"
// @Success      200  {array}  domain.Like
// @Failure      404  {object} map[string]string
// @Router       /likes/post/{id} [get]
func (h *LikeHandler) ListByPost(c echo.Context) error {
	likes, err := h.likeService.ListByPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likes)
}

// ListByUser returns the likes given by one user.
//
// @Summary      List likes by user
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "User id"
// @Success      200  {array}  domain.Like
// @Failure      404  {object} map[string]string
// @Router       /likes/user/{id} [get]
func (h *LikeHandler) ListByUser(c echo.Context) error {
	likes, err := h.likeService.ListByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likes)
}

// Delete removes a like.
//
// @Summary      Delete a like
// @Tags         likes
// @Security     BearerAuth
// @Param        id  path  string  true  "Like id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /likes/{id} [delete]
func (h *LikeHandler) Delete(c echo.Context) error {
	if err := h.likeService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
