package router

import (
	"blog-api/handlers"
	"blog-api/helper"
	"blog-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "blog-api/docs"
)

type Handlers struct {
	Article *handlers.ArticleHandler
	Tag     *handlers.TagHandler
	Comment *handlers.CommentHandler
	Health  *handlers.HealthHandler
}

func initRoute(r *gin.Engine, h Handlers) {
	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		articles := api.Group("/articles")
		{
			articles.GET("", h.Article.GetArticles)
			articles.POST("", h.Article.CreateArticle)
			articles.GET("/id/:id", h.Article.GetArticleByID)
			articles.GET("/id/:id/related", h.Article.GetRelatedArticles)
			articles.GET("/:slug", h.Article.GetArticleBySlug)
			articles.PUT("/:slug", h.Article.UpdateArticle)
			articles.DELETE("/:slug", h.Article.DeleteArticle)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", h.Tag.GetTags)
			tags.POST("", h.Tag.CreateTag)
			tags.GET("/topics", h.Tag.GetTopics)
			tags.GET("/:name/articles", h.Tag.GetArticlesByTag)
			tags.DELETE("/:name", h.Tag.DeleteTag)
		}

		comments := api.Group("/comments")
		{
			comments.GET("/article/:articleId", h.Comment.GetArticleComments)
			comments.POST("/article/:articleId", h.Comment.CreateComment)
			comments.DELETE("/:id", h.Comment.DeleteComment)
		}
	}
}

// SetupRouter builds the engine with middleware and every route registered.
func SetupRouter(h Handlers, httpHelper *helper.HTTPHelper, logger *zap.Logger, frontendURL string) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestLogger(logger),
		middleware.Recovery(httpHelper),
		middleware.Metrics(),
		middleware.CORS(frontendURL),
	)

	initRoute(r, h)

	return r
}
