package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/recipevault/internal/model"
	"github.com/user/recipevault/internal/utils"
)

// CategoryList category browse page
func (h *Handler) CategoryList(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "categories.html", h.RenderData(c, gin.H{
		"Title":      "Categories - " + h.Config.SiteName,
		"Categories": categories,
	}))
}

// CategoryDetail single category page
func (h *Handler) CategoryDetail(c *gin.Context) {
	category, err := h.Categories.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.serverError(c, err)
		return
	}
	if category == nil {
		h.NotFound(c)
		return
	}

	c.HTML(http.StatusOK, "category.html", h.RenderData(c, gin.H{
		"Title":    category.Name + " - " + h.Config.SiteName,
		"Category": category,
	}))
}

// APICategories JSON category list
func (h *Handler) APICategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "failed to fetch categories")
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	utils.Success(c, categories)
}
