package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/controller"
)

// SetupRouter 组装 Gin 引擎：全局中间件、业务路由分组、Swagger 与健康检查。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.BoardConfig,
	postController *controller.PostController,
	hotBoardController *controller.HotBoardController,
) *gin.Engine {
	// 用 gin.New() 自行组合中间件，Recovery 与访问日志都走公共中间件实现。
	engine := gin.New()

	// 中间件顺序：OTel 最先建立追踪上下文，随后是 panic 恢复、
	// 带 TraceID 的访问日志，最后是请求级超时。
	engine.Use(otelgin.Middleware(constant.ServiceName))
	engine.Use(commonMiddleware.ErrorHandlingMiddleware(logger))
	if baseLogger := logger.Logger(); baseLogger != nil {
		engine.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过访问日志中间件")
	}
	engine.Use(commonMiddleware.RequestTimeoutMiddleware(logger,
		time.Duration(cfg.ServerConfig.RequestTimeout)*time.Second))

	// 业务路由统一挂在 /api/v1/board 下。
	v1 := engine.Group("/api/v1/board")
	postController.RegisterRoutes(v1)
	hotBoardController.RegisterRoutes(v1)
	logger.Info("业务路由已注册到 /api/v1/board 分组")

	// Swagger UI：访问 /swagger/index.html。
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json")))

	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return engine
}
