package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/haulflow/backoffice/framework/connection"
	"github.com/haulflow/backoffice/framework/web"
	"github.com/haulflow/backoffice/logger"
	"github.com/haulflow/backoffice/reminder/dal"
	"github.com/haulflow/backoffice/reminder/service"
)

type ReminderHandler struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	service        service.ReminderService
}

func NewReminderHandler(log logger.Provider, conn *connection.Connection) *ReminderHandler {
	svc := service.NewReminderService(log, conn)

	return &ReminderHandler{
		loggerProvider: log,
		conn:           conn,
		service:        svc,
	}
}

type CreateBusinessCaseReminderRequest struct {
	CompanyID        string    `json:"companyID" validate:"required"`
	BusinessCaseID   string    `json:"businessCaseID" validate:"required"`
	RecipientEmail   string    `json:"recipientEmail" validate:"required,email"`
	ReminderDateTime time.Time `json:"reminderDateTime" validate:"required"`
	CompanyName      string    `json:"companyName" validate:"required"`
	ContactName      string    `json:"contactName"`
	Note             string    `json:"note"`
}

type CreateTransportRemindersRequest struct {
	CompanyID              string    `json:"companyID" validate:"required"`
	TransportID            string    `json:"transportID" validate:"required"`
	RecipientEmail         string    `json:"recipientEmail" validate:"required,email"`
	LoadingTime            time.Time `json:"loadingTime" validate:"required"`
	LoadingOffsetMinutes   int       `json:"loadingOffsetMinutes" validate:"min=0"`
	UnloadingTime          time.Time `json:"unloadingTime" validate:"required"`
	UnloadingOffsetMinutes int       `json:"unloadingOffsetMinutes" validate:"min=0"`
	CompanyName            string    `json:"companyName"`
	OrderNumber            string    `json:"orderNumber"`
	LoadingAddress         string    `json:"loadingAddress" validate:"required"`
	UnloadingAddress       string    `json:"unloadingAddress" validate:"required"`
	Note                   string    `json:"note"`
}

// Dispatch runs one due-reminder scan. Invoked by Cloud Scheduler every
// minute; overlapping invocations are safe because consumption is claimed
// transactionally.
func (h *ReminderHandler) Dispatch(ctx *gin.Context) error {
	if err := h.service.RunDueReminders(ctx); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

// Rollup lazily creates today's metrics counters for every tenant. Invoked
// by Cloud Scheduler hourly.
func (h *ReminderHandler) Rollup(ctx *gin.Context) error {
	if err := h.service.EnsureTodayCounters(ctx); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *ReminderHandler) CreateBusinessCaseReminder(ctx *gin.Context) error {
	var req CreateBusinessCaseReminderRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validator.New().Struct(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	id, err := h.service.GenerateBusinessCaseReminder(ctx, &service.BusinessCaseReminderInput{
		CompanyID:        req.CompanyID,
		BusinessCaseID:   req.BusinessCaseID,
		RecipientEmail:   req.RecipientEmail,
		ReminderDateTime: req.ReminderDateTime,
		CompanyName:      req.CompanyName,
		ContactName:      req.ContactName,
		Note:             req.Note,
	})
	if err != nil {
		return web.NewRequestError(err, statusOf(err))
	}

	return web.Respond(ctx, gin.H{"id": id}, http.StatusCreated)
}

func (h *ReminderHandler) CreateTransportReminders(ctx *gin.Context) error {
	var req CreateTransportRemindersRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validator.New().Struct(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	ids, err := h.service.GenerateTransportReminders(ctx, &service.TransportReminderInput{
		CompanyID:              req.CompanyID,
		TransportID:            req.TransportID,
		RecipientEmail:         req.RecipientEmail,
		LoadingTime:            req.LoadingTime,
		LoadingOffsetMinutes:   req.LoadingOffsetMinutes,
		UnloadingTime:          req.UnloadingTime,
		UnloadingOffsetMinutes: req.UnloadingOffsetMinutes,
		CompanyName:            req.CompanyName,
		OrderNumber:            req.OrderNumber,
		LoadingAddress:         req.LoadingAddress,
		UnloadingAddress:       req.UnloadingAddress,
		Note:                   req.Note,
	})
	if err != nil {
		return web.NewRequestError(err, statusOf(err))
	}

	return web.Respond(ctx, gin.H{"ids": ids}, http.StatusCreated)
}

// DeleteTransportReminders removes the reminders of a deleted transport.
func (h *ReminderHandler) DeleteTransportReminders(ctx *gin.Context) error {
	transportID := ctx.Param("transportID")
	companyID := ctx.Query("companyID")

	if transportID == "" || companyID == "" {
		return web.NewRequestError(errors.New("transportID and companyID are required"), http.StatusBadRequest)
	}

	deleted, err := h.service.DeleteTransportReminders(ctx, companyID, transportID)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"deleted": deleted}, http.StatusOK)
}

// GetDailyMetrics returns a tenant's delivery counters for a day. Without an
// explicit date the counters for today in the tenant's time zone are returned.
func (h *ReminderHandler) GetDailyMetrics(ctx *gin.Context) error {
	companyID := ctx.Query("companyID")
	if companyID == "" {
		return web.NewRequestError(errors.New("companyID is required"), http.StatusBadRequest)
	}

	day := ctx.Query("date")

	metrics, err := h.service.GetDailyMetrics(ctx, companyID, day)
	if err != nil {
		if errors.Is(err, dal.ErrMetricsNotFound) || errors.Is(err, dal.ErrCompanyNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, metrics, http.StatusOK)
}

func statusOf(err error) int {
	if errors.Is(err, service.ErrInvalidRecipient) || errors.Is(err, service.ErrInvalidOffset) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
