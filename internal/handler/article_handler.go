package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"curavital-api/internal/model"
	"curavital-api/internal/service"
)

// ListArticles serves the visitor article index. `q` searches title,
// excerpt and content; `category` filters, with "Todos" meaning all.
// Both paths only ever return published articles.
func (h *Handler) ListArticles(c *gin.Context) {
	var (
		out []model.Article
		err error
	)

	if q := c.Query("q"); q != "" {
		out, err = h.articles.Search(c.Request.Context(), q)
	} else if cat := c.Query("category"); cat != "" {
		out, err = h.articles.ByCategory(c.Request.Context(), cat)
	} else {
		out, err = h.articles.ListPublished(c.Request.Context())
	}
	if err != nil {
		respondErr(c, err)
		return
	}
	if out == nil {
		out = []model.Article{}
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) FeaturedArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
	c.JSON(http.StatusOK, h.articles.Featured(c.Request.Context(), limit))
}

func (h *Handler) GetArticle(c *gin.Context) {
	a, err := h.articles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

type createArticleRequest struct {
	Title       string   `json:"title" binding:"required"`
	Excerpt     string   `json:"excerpt" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Author      string   `json:"author" binding:"required"`
	ReadTime    string   `json:"readTime"`
	Image       string   `json:"image"`
	IsPublished bool     `json:"isPublished"`
	Tags        []string `json:"tags"`
}

func (h *Handler) CreateArticle(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.articles.Create(c.Request.Context(), &model.Article{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Category:    req.Category,
		Author:      req.Author,
		ReadTime:    req.ReadTime,
		Image:       req.Image,
		IsPublished: req.IsPublished,
		Tags:        req.Tags,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateArticle(c *gin.Context) {
	var p service.ArticlePatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.articles.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	if err := h.articles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
