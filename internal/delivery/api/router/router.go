// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"planner/internal/delivery/api/middleware"
	"planner/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	TaskHandler     *handler.TaskHandler
	ActivityHandler *handler.ActivityHandler
	NoteHandler     *handler.NoteHandler
	SystemHandler   *handler.SystemHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	taskHandler     *handler.TaskHandler
	activityHandler *handler.ActivityHandler
	noteHandler     *handler.NoteHandler
	systemHandler   *handler.SystemHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		taskHandler:     params.TaskHandler,
		activityHandler: params.ActivityHandler,
		noteHandler:     params.NoteHandler,
		systemHandler:   params.SystemHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.systemHandler.Welcome)
	e.GET("/health", r.systemHandler.HealthCheck)
	e.GET("/startCron", r.systemHandler.StartKeepAlive)
	e.GET("/startCron/:duration", r.systemHandler.StartKeepAlive)

	api := e.Group("/api")

	// Auth routes
	api.POST("/register", r.accountHandler.Register)
	api.POST("/login", r.accountHandler.Login)

	tasks := api.Group("/tasks", r.authMiddleware.Authenticate)
	{
		tasks.POST("", r.taskHandler.CreateTask)
		tasks.GET("", r.taskHandler.ListTasks)
		tasks.GET("/:id", r.taskHandler.GetTask)
		tasks.PUT("/:id", r.taskHandler.UpdateTask)
		tasks.DELETE("/:id", r.taskHandler.DeleteTask)
	}

	activities := api.Group("/activities", r.authMiddleware.Authenticate)
	{
		activities.POST("", r.activityHandler.CreateActivity)
		activities.GET("", r.activityHandler.ListActivities)
		activities.GET("/query/:field/:value", r.activityHandler.SearchActivities)
		activities.GET("/:id", r.activityHandler.GetActivity)
		activities.PUT("/:id", r.activityHandler.UpdateActivity)
		activities.DELETE("/:id", r.activityHandler.DeleteActivity)
	}

	notes := api.Group("/notes", r.authMiddleware.Authenticate)
	{
		notes.POST("", r.noteHandler.CreateNote)
		notes.GET("", r.noteHandler.ListNotes)
		notes.GET("/query/:field/:value", r.noteHandler.SearchNotes)
		notes.GET("/:id", r.noteHandler.GetNote)
		notes.PUT("/:id", r.noteHandler.UpdateNote)
		notes.DELETE("/:id", r.noteHandler.DeleteNote)
	}
}
