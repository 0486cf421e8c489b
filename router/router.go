package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dalu/config"
	"dalu/pkg/middleware"
	"dalu/pkg/respond"

	animalCtrlImp "dalu/pkg/animal/controllerImp"
	animalRepoImp "dalu/pkg/animal/repositoryImp"
	cropCtrlImp "dalu/pkg/crop/controllerImp"
	cropRepoImp "dalu/pkg/crop/repositoryImp"
	cropSvcImp "dalu/pkg/crop/serviceImp"
	flowerCtrlImp "dalu/pkg/flower/controllerImp"
	flowerRepoImp "dalu/pkg/flower/repositoryImp"
	healthCtrlImp "dalu/pkg/health/controllerImp"
	statsCtrlImp "dalu/pkg/statistics/controllerImp"
	statsRepoImp "dalu/pkg/statistics/repositoryImp"
	statsSvcImp "dalu/pkg/statistics/serviceImp"
)

type crud interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func New(
	e *echo.Echo,
	prefix string,
	auth echo.MiddlewareFunc,
	cropCtrl interface {
		crud
		Harvest(echo.Context) error
	},
	animalCtrl crud,
	flowerCtrl crud,
	statsCtrl interface {
		Overview(echo.Context) error
		Crops(echo.Context) error
		Animals(echo.Context) error
		Flowers(echo.Context) error
		Charts(echo.Context) error
		Calendar(echo.Context) error
	},
	healthCtrl interface {
		Root(echo.Context) error
		Health(echo.Context) error
	},
) *echo.Echo {
	e.GET("/", healthCtrl.Root)
	e.GET("/health", healthCtrl.Health)

	api := e.Group(prefix, auth)
	resource(api.Group("/crops"), cropCtrl)
	api.PATCH("/crops/:id/harvest", cropCtrl.Harvest)
	resource(api.Group("/animals"), animalCtrl)
	resource(api.Group("/flowers"), flowerCtrl)

	st := api.Group("/statistics")
	st.GET("/overview", statsCtrl.Overview)
	st.GET("/crops", statsCtrl.Crops)
	st.GET("/animals", statsCtrl.Animals)
	st.GET("/flowers", statsCtrl.Flowers)
	st.GET("/charts", statsCtrl.Charts)
	st.GET("/calendar", statsCtrl.Calendar)
	return e
}

func resource(g *echo.Group, h crud) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Build wires repositories, services and controllers over db and returns a
// ready echo instance with the shared middleware stack.
func Build(db *gorm.DB, cfg config.ServerConfig, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = respond.ErrorHandler

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	cropSvc := cropSvcImp.NewCropService(cropRepoImp.New(db))
	statsSvc := statsSvcImp.NewStatisticsService(statsRepoImp.New(db))

	return New(
		e,
		cfg.APIPrefix,
		middleware.BearerAuth(cfg.RequireAuth, cfg.APIToken),
		cropCtrlImp.New(cropSvc),
		animalCtrlImp.New(animalRepoImp.New(db)),
		flowerCtrlImp.New(flowerRepoImp.New(db)),
		statsCtrlImp.New(statsSvc),
		healthCtrlImp.NewHealthCtrl(db, cfg.APIPrefix),
	)
}
