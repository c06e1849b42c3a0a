package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type FollowHandler struct {
	followService ports.FollowService
}

func NewFollowHandler(followService ports.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

type followRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// Create makes the authenticated principal follow another user.
//
// @Summary      Follow a user
// @Tags         follows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      followRequest  true  "User to follow"
// @Success      201   {object}  domain.Follow
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /follows [post]
func (h *FollowHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req followRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	follow, err := h.followService.Follow(c.Request().Context(), p.ID, req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, follow)
}

// Delete makes the authenticated principal unfollow a user.
//
// @Summary      Unfollow a user
// @Tags         follows
// @Security     BearerAuth
// @Param        id  path  string  true  "User id to unfollow"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /follows/{id} [delete]
func (h *FollowHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.followService.Unfollow(c.Request().Context(), p.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Followers lists the users following the given user.
//
// @Summary      List followers
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "User id"
// @Success      200  {array}  domain.Follow
// @Router       /follows/followers/{id} [get]
func (h *FollowHandler) Followers(c echo.Context) error {
	follows, err := h.followService.Followers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, follows)
}

// Following lists the users the given user follows.
//
// @Summary      List following
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "User id"
// @Success      200  {array}  domain.Follow
// @Router       /follows/following/{id} [get]
func (h *FollowHandler) Following(c echo.Context) error {
	follows, err := h.followService.Following(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, follows)
}
