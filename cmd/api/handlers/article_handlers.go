package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"wiki-analyzer/cmd/api/dto"
	"wiki-analyzer/cmd/api/services"
)

// SearchHandler godoc
// @Summary      Search Wikipedia
// @Description  Search Wikipedia articles; results keep the search ranking
// @Tags         articles
// @Param        q      query  string  true   "Search term"
// @Param        limit  query  int     false  "Max results (<=50)"
// @Produce      json
// @Success      200  {array}   dto.SearchResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /search [get]
func SearchHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			badRequest(c, "query parameter q is required")
			return
		}
		limit, _ := strconv.Atoi(c.Query("limit"))

		results, err := svc.Search(c.Request.Context(), q, limit)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

// GetArticleHandler godoc
// @Summary      Get article summary with analysis
// @Description  Fetch the article summary from Wikipedia and analyze it
// @Tags         articles
// @Param        title  path  string  true  "Article title (Barack_Obama)"
// @Produce      json
// @Success      200  {object}  dto.ArticleDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /articles/{title} [get]
func GetArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		article, err := svc.Get(c.Request.Context(), c.Param("title"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// GetFullArticleHandler godoc
// @Summary      Get full article with analysis
// @Description  Fetch the whole article as plain text and analyze it
// @Tags         articles
// @Param        title  path  string  true  "Article title"
// @Produce      json
// @Success      200  {object}  dto.ArticleDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /articles/{title}/full [get]
func GetFullArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		article, err := svc.GetFull(c.Request.Context(), c.Param("title"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// FeaturedHandler godoc
// @Summary      Featured articles
// @Description  Latest items of the Wikipedia featured articles feed
// @Tags         articles
// @Param        limit  query  int  false  "Max items (<=50)"
// @Produce      json
// @Success      200  {array}   dto.FeaturedArticleDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /featured [get]
func FeaturedHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		items, err := svc.Featured(c.Request.Context(), limit)
		if err != nil {
			// 피드 파싱/전송 실패는 모두 upstream 장애로 본다.
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// AnalyzeHandler godoc
// @Summary      Analyze text
// @Description  Run the analysis engine over arbitrary text
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AnalyzeRequestDTO  true  "Text to analyze"
// @Success      200   {object}  analysis.Result
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /analyze [post]
func AnalyzeHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AnalyzeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		c.JSON(http.StatusOK, svc.Analyze(req.Text))
	}
}
