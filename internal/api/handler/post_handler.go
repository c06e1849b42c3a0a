package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type PostHandler struct {
	postService ports.PostService
	permissions ports.PermissionService
}

func NewPostHandler(postService ports.PostService, permissions ports.PermissionService) *PostHandler {
	return &PostHandler{postService: postService, permissions: permissions}
}

type createPostRequest struct {
	Content string `json:"content" validate:"required"`
	FileID  string `json:"file_id"`
}

type updatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

// Create publishes a post authored by the authenticated principal.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content and optional file attachment"
// @Success      201   {object}  ports.PostView
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Create(c.Request().Context(), p.Username, ports.CreatePostInput{
		Content: req.Content,
		FileID:  req.FileID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// Get returns a single post joined with its author.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  ports.PostView
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// List returns all posts, newest first.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.PostView
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// ListByUser returns a user's posts, applying the private-profile gate: when
// the target profile is private, the viewer must be the owner or a follower.
//
// @Summary      List posts by user id
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {array}   ports.PostView
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/user/{id} [get]
func (h *PostHandler) ListByUser(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	posts, err := h.postService.ListByUser(c.Request().Context(), c.Param("id"), p.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// ListByUsername returns the named user's posts without the visibility gate;
// it backs the principal's own profile page.
//
// @Summary      List posts by username
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        username  path     string  true  "Username"
// @Success      200       {array}  ports.PostView
// @Failure      404       {object} map[string]string
// @Router       /posts/username/{username} [get]
func (h *PostHandler) ListByUsername(c echo.Context) error {
	posts, err := h.postService.ListByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Update edits a post's content. Owner or admin only.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "New content"
// @Success      200   {object}  ports.PostView
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if !h.permissions.CanDeletePost(c.Request().Context(), p, id) {
		return domain.ErrAccessDenied
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Update(c.Request().Context(), id, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post after consulting the permission evaluator.
//
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if !h.permissions.CanDeletePost(c.Request().Context(), p, id) {
		return domain.ErrAccessDenied
	}

	if err := h.postService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
