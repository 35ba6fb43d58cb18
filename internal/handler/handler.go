package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/user/recipevault/internal/config"
	"github.com/user/recipevault/internal/model"
	"github.com/user/recipevault/internal/service"
)

// prefsKey session key holding model.SessionPrefs
const prefsKey = "prefs"

// Handler HTTP handlers
type Handler struct {
	Config     *config.Config
	Categories *service.CategoryService
}

// NewHandler creates the handlers
func NewHandler(cfg *config.Config, categories *service.CategoryService) *Handler {
	return &Handler{
		Config:     cfg,
		Categories: categories,
	}
}

// RenderData merges the shared layout data into data
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	res := gin.H{
		"SiteName":   h.Config.SiteName,
		"SiteUrl":    h.Config.SiteUrl,
		"Path":       c.Request.URL.Path,
		"Theme":      currentPrefs(c).Theme,
		"ActiveMenu": activeMenu(c.Request.URL.Path),
		"Year":       time.Now().Year(),
	}

	for k, v := range data {
		res[k] = v
	}

	return res
}

// currentPrefs reads visitor preferences, zero value when none are stored
func currentPrefs(c *gin.Context) model.SessionPrefs {
	session := sessions.Default(c)
	if v := session.Get(prefsKey); v != nil {
		if prefs, ok := v.(model.SessionPrefs); ok {
			return prefs
		}
	}
	return model.SessionPrefs{}
}

// activeMenu maps a path to the highlighted menu entry
func activeMenu(path string) string {
	switch {
	case path == "/":
		return "home"
	case path == "/categories" || strings.HasPrefix(path, "/categories/"):
		return "categories"
	case path == "/design-system":
		return "design"
	case path == "/about":
		return "about"
	default:
		return ""
	}
}

// NotFound renders the 404 page
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.RenderData(c, gin.H{
		"Title": "Not found - " + h.Config.SiteName,
	}))
}

// serverError logs err and renders the error page
func (h *Handler) serverError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("render page")
	c.HTML(http.StatusInternalServerError, "error.html", h.RenderData(c, gin.H{
		"Title": "Error - " + h.Config.SiteName,
	}))
}
