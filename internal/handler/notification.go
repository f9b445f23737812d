package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/transport-ticketing/internal/repository"
	"github.com/iliyamo/transport-ticketing/internal/service"
)

// NotificationHandler exposes the notification inbox and the upcoming
// unsold-seat sweep.
type NotificationHandler struct {
	Notifications service.NotificationService
	Notifier      service.Notifier
	Users         repository.UserRepository
}

func NewNotificationHandler(notifications service.NotificationService, notifier service.Notifier, users repository.UserRepository) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications, Notifier: notifier, Users: users}
}

// List returns the authenticated user's notifications, newest first.
func (h *NotificationHandler) List(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	return c.JSON(http.StatusOK, h.Notifications.GetForUser(actor.ID))
}

// MarkRead stamps a notification as read.  Only the addressee may mark
// their own notifications.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	n, err := h.Notifications.MarkRead(actor, c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, n)
}

// Sweep runs the pull-based upcoming unsold-seat scan (admin only via
// route gating).  The horizon defaults to 24 hours.
func (h *NotificationHandler) Sweep(c echo.Context) error {
	hours := 24
	if s := c.QueryParam("hours"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hours"})
		}
		hours = n
	}
	flagged := h.Notifier.SweepUpcoming(time.Duration(hours) * time.Hour)
	return c.JSON(http.StatusOK, echo.Map{"flagged": flagged})
}
