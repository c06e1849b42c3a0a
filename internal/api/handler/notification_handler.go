package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type createNotificationRequest struct {
	UserID   string `json:"user_id"   validate:"required"`
	EntityID string `json:"entity_id" validate:"required"`
	Type     string `json:"type"      validate:"required,oneof=POST COMMENT LIKE FOLLOW"`
	Content  string `json:"content"   validate:"required"`
}

type updateNotificationRequest struct {
	Content string `json:"content" validate:"required"`
}

type markReadRequest struct {
	Read *bool `json:"read" validate:"required"`
}

type countResponse struct {
	Count int `json:"count"`
}

// Create stores a notification for a user.
//
// @Summary      Create a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNotificationRequest  true  "Notification details"
// @Success      201   {object}  domain.Notification
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /notifications [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, ok := domain.ParseNotificationType(req.Type)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown notification type")
	}

	n, err := h.notificationService.Create(c.Request().Context(), ports.CreateNotificationInput{
		UserID:   req.UserID,
		EntityID: req.EntityID,
		Type:     t,
		Content:  req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, n)
}

// Get returns a single notification.
//
// @Summary      Get a notification by id
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  domain.Notification
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id} [get]
func (h *NotificationHandler) Get(c echo.Context) error {
	n, err := h.notificationService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// ListByUser returns all notifications for a user, newest first.
//
// @Summary      List notifications by user
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "User id"
// @Success      200  {array}  domain.Notification
// @Router       /notifications/user/{id} [get]
func (h *NotificationHandler) ListByUser(c echo.Context) error {
	notifications, err := h.notificationService.ListByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// ListUnreadByUser returns the unread notifications for a user.
//
// @Summary      List unread notifications by user
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "User id"
// @Success      200  {array}  domain.Notification
// @Router       /notifications/user/{id}/unread [get]
func (h *NotificationHandler) ListUnreadByUser(c echo.Context) error {
	notifications, err := h.notificationService.ListUnreadByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// CountByUser returns the total notification count for a user.
//
// @Summary      Count notifications by user
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  countResponse
// @Router       /notifications/user/{id}/count [get]
func (h *NotificationHandler) CountByUser(c echo.Context) error {
	n, err := h.notificationService.CountByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}

// CountUnreadByUser returns the unread notification count for a user.
//
// @Summary      Count unread notifications by user
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  countResponse
// @Router       /notifications/user/{id}/unread/count [get]
func (h *NotificationHandler) CountUnreadByUser(c echo.Context) error {
	n, err := h.notificationService.CountUnreadByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}

// Update rewrites a notification's content.
//
// @Summary      Update a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Notification id"
// @Param        body  body      updateNotificationRequest  true  "New content"
// @Success      200   {object}  domain.Notification
// @Failure      404   {object}  map[string]string
// @Router       /notifications/{id} [put]
func (h *NotificationHandler) Update(c echo.Context) error {
	var req updateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	n, err := h.notificationService.UpdateContent(c.Request().Context(), c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// MarkRead flips the read flag on a notification.
//
// @Summary      Mark a notification read or unread
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Notification id"
// @Param        body  body      markReadRequest  true  "Read flag"
// @Success      200   {object}  domain.Notification
// @Failure      404   {object}  map[string]string
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	n, err := h.notificationService.MarkRead(c.Request().Context(), c.Param("id"), *req.Read)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// Delete removes one notification.
//
// @Summary      Delete a notification
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	if err := h.notificationService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteByUser removes all notifications for a user.
//
// @Summary      Delete all notifications for a user
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /notifications/user/{id} [delete]
func (h *NotificationHandler) DeleteByUser(c echo.Context) error {
	if err := h.notificationService.DeleteByUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
