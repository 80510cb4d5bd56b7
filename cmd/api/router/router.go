package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wiki-analyzer/cmd/api/handlers"
	"wiki-analyzer/cmd/api/middleware"
	"wiki-analyzer/cmd/api/services"
	_ "wiki-analyzer/docs"
)

// Deps 는 라우터가 핸들러에 연결하는 서비스 묶음이다.
type Deps struct {
	Articles      *services.ArticleService
	SavedArticles *services.SavedArticleService
	Health        handlers.PingFunc
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	// 제목의 %2F 를 경로 구분자로 보지 않도록 raw path 로 라우팅한다.
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(middleware.RequestTrace(), middleware.Recovery(), middleware.CORS(middleware.AllowAllOrigins()))

	r.GET("/", handlers.RootHandler())
	r.GET("/health", handlers.HealthHandler(d.Health))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/search", handlers.SearchHandler(d.Articles))
		api.GET("/articles/:title", handlers.GetArticleHandler(d.Articles))
		api.GET("/articles/:title/full", handlers.GetFullArticleHandler(d.Articles))
		api.GET("/featured", handlers.FeaturedHandler(d.Articles))
		api.POST("/analyze", handlers.AnalyzeHandler(d.Articles))

		api.POST("/saved_articles", handlers.CreateSavedArticleHandler(d.SavedArticles))
		api.GET("/saved_articles", handlers.ListSavedArticlesHandler(d.SavedArticles))
		api.GET("/saved_articles/:id", handlers.GetSavedArticleHandler(d.SavedArticles))
		api.PUT("/saved_articles/:id", handlers.UpdateSavedArticleNoteHandler(d.SavedArticles))
		api.DELETE("/saved_articles/:id", handlers.DeleteSavedArticleHandler(d.SavedArticles))
	}

	return r
}
