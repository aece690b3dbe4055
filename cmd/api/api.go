package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/haulflow/backoffice/framework/connection"
	"github.com/haulflow/backoffice/framework/mid"
	"github.com/haulflow/backoffice/framework/web"
	"github.com/haulflow/backoffice/logger"
	reminderHandlers "github.com/haulflow/backoffice/reminder/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	reminders := reminderHandlers.NewReminderHandler(loggerProvider, a.conn)

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	// Cloud Scheduler endpoints. Dispatch runs every minute, rollup hourly;
	// the scheduler gives no mutual exclusion guarantee, the claim does.
	tasksGroup := web.NewGroup(app, "/tasks")
	{
		remindersTasksGroup := tasksGroup.NewSubgroup("/reminders")
		{
			remindersTasksGroup.Post("/dispatch", reminders.Dispatch)
			remindersTasksGroup.Post("/rollup", reminders.Rollup)
		}
	}

	// Producer endpoints called by the back office UI.
	remindersGroup := web.NewGroup(app, "/reminders")
	{
		remindersGroup.Post("/business-case", reminders.CreateBusinessCaseReminder)
		remindersGroup.Post("/transport", reminders.CreateTransportReminders)
		remindersGroup.Delete("/transport/:transportID", reminders.DeleteTransportReminders)
	}

	// Read side for the back office dashboard.
	metricsGroup := web.NewGroup(app, "/metrics")
	{
		metricsGroup.Get("/daily", reminders.GetDailyMetrics)
	}

	return app
}
