package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type createCommentRequest struct {
	PostID  string `json:"post_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Create adds a comment by the authenticated principal.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment target and content"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Create(c.Request().Context(), p.ID, req.PostID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// List returns all comments.
//
// @Summary      List all comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Comment
// @Router       /comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.commentService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// ListByPost returns the comments on one post.
//
// @Summary      List comments by post
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Post id"
// @Success      200  {array}  domain.Comment
// @Failure      404  {object} map[string]string
// @Router       /comments/post/{id} [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	comments, err := h.commentService.ListByPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// ListByUser returns the comments written by one user.
//
// @Summary      List comments by user
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "User id"
// @Success      200  {array}  domain.Comment
// @Failure      404  {object} map[string]string
// @Router       /comments/user/{id} [get]
func (h *CommentHandler) ListByUser(c echo.Context) error {
	comments, err := h.commentService.ListByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Delete removes a comment.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "Comment id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.commentService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
