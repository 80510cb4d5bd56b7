package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wiki-analyzer/cmd/api/dto"
	"wiki-analyzer/cmd/api/services"
)

// CreateSavedArticleHandler godoc
// @Summary      Save an article
// @Description  Persist an article; its analysis is computed from the summary on the server
// @Tags         saved_articles
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSavedArticleRequestDTO  true  "Article"
// @Success      201   {object}  dto.SavedArticleDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      422   {object}  dto.ErrorResponseDTO
// @Router       /saved_articles [post]
func CreateSavedArticleHandler(svc *services.SavedArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateSavedArticleRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		created, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListSavedArticlesHandler godoc
// @Summary      List saved articles
// @Description  Saved articles, newest first
// @Tags         saved_articles
// @Param        page       query  int  false  "Page number (1-based)"
// @Param        page_size  query  int  false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  dto.PaginationSavedArticleDTO
// @Router       /saved_articles [get]
func ListSavedArticlesHandler(svc *services.SavedArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

		resp, err := svc.List(c.Request.Context(), page, pageSize)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetSavedArticleHandler godoc
// @Summary      Get a saved article
// @Tags         saved_articles
// @Param        id  path  int  true  "Saved article id"
// @Produce      json
// @Success      200  {object}  dto.SavedArticleDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /saved_articles/{id} [get]
func GetSavedArticleHandler(svc *services.SavedArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		a, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// UpdateSavedArticleNoteHandler godoc
// @Summary      Update the note of a saved article
// @Description  Only the note can change after an article is saved
// @Tags         saved_articles
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Saved article id"
// @Param        body  body      dto.UpdateNoteRequestDTO  true  "New note"
// @Success      200   {object}  dto.SavedArticleDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /saved_articles/{id} [put]
func UpdateSavedArticleNoteHandler(svc *services.SavedArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req dto.UpdateNoteRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "note is required")
			return
		}
		a, err := svc.UpdateNote(c.Request.Context(), id, *req.Note)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// DeleteSavedArticleHandler godoc
// @Summary      Delete a saved article
// @Description  Deletes the article and its analysis
// @Tags         saved_articles
// @Param        id  path  int  true  "Saved article id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /saved_articles/{id} [delete]
func DeleteSavedArticleHandler(svc *services.SavedArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "saved article deleted"})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
