package http

import (
	"net/http"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/domain/notification"
	"github.com/sbexpress/hris-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	GetBirthdays(w http.ResponseWriter, r *http.Request)
	GetContracts(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.NotificationService
	defaultLookahead    int
	now                 func() time.Time
}

func NewNotificationHandler(notificationService notification.NotificationService, defaultLookahead int) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
		defaultLookahead:    defaultLookahead,
		now:                 time.Now,
	}
}

// GetBirthdays handles GET /notifications/birthdays
func (h *notificationHandlerImpl) GetBirthdays(w http.ResponseWriter, r *http.Request) {
	days := h.defaultLookahead
	if r.URL.Query().Has("days") {
		var err error
		if days, err = queryInt(r, "days"); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	result, err := h.notificationService.GetBirthdayNotifications(r.Context(), h.now(), days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetContracts handles GET /notifications/contracts
func (h *notificationHandlerImpl) GetContracts(w http.ResponseWriter, r *http.Request) {
	result, err := h.notificationService.GetContractNotifications(r.Context(), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
