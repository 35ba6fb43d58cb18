package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/user/recipevault/internal/model"
	"github.com/user/recipevault/internal/utils"
)

// Features landing page feature cards, in display order
var Features = []model.Feature{
	{
		TestID:      "feature-ai-extraction",
		Title:       "AI Recipe Extraction",
		Description: "Paste a link or upload a photo and get a clean, structured recipe in seconds.",
		Href:        "/extract",
		Icon:        "✨",
	},
	{
		TestID:      "feature-meal-planning",
		Title:       "Meal Planning",
		Description: "Drag recipes onto your week and get a balanced plan for the whole family.",
		Href:        "/meal-plans",
		Icon:        "📅",
	},
	{
		TestID:      "feature-photo-tracking",
		Title:       "Photo Food Tracking",
		Description: "Snap what you eat and keep a visual food log without typing a thing.",
		Href:        "/food-logging",
		Icon:        "📸",
	},
	{
		TestID:      "feature-inventory-shopping",
		Title:       "Smart Inventory & Shopping",
		Description: "Know what is in your pantry and build shopping lists from what is missing.",
		Href:        "/smart-inventory",
		Icon:        "🛒",
	},
}

var swatches = []model.Swatch{
	{Name: "primary", Variable: "--color-primary", Hex: "#e4572e"},
	{Name: "secondary", Variable: "--color-secondary", Hex: "#29335c"},
	{Name: "accent", Variable: "--color-accent", Hex: "#f3a712"},
	{Name: "success", Variable: "--color-success", Hex: "#669bbc"},
	{Name: "surface", Variable: "--color-surface", Hex: "#ffffff"},
	{Name: "text", Variable: "--color-text", Hex: "#1f2430"},
}

var typeScale = []model.TypeSample{
	{Label: "Display", Class: "text-display", Size: "48px"},
	{Label: "Heading", Class: "text-heading", Size: "32px"},
	{Label: "Title", Class: "text-title", Size: "24px"},
	{Label: "Body", Class: "text-body", Size: "16px"},
	{Label: "Caption", Class: "text-caption", Size: "13px"},
}

var buttons = []model.ButtonVariant{
	{Label: "Primary", Class: "btn-primary"},
	{Label: "Secondary", Class: "btn-secondary"},
	{Label: "Outline", Class: "btn-outline"},
	{Label: "Ghost", Class: "btn-ghost"},
}

// Home landing page
func (h *Handler) Home(c *gin.Context) {
	// the landing page still renders when the database is unavailable
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("home categories")
		categories = nil
	}

	c.HTML(http.StatusOK, "home.html", h.RenderData(c, gin.H{
		"Title":      h.Config.SiteName + " - Your recipes, organised",
		"Features":   Features,
		"Categories": categories,
	}))
}

// About marketing page
func (h *Handler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.RenderData(c, gin.H{
		"Title": "About - " + h.Config.SiteName,
	}))
}

// DesignSystem design token showcase
func (h *Handler) DesignSystem(c *gin.Context) {
	c.HTML(http.StatusOK, "design_system.html", h.RenderData(c, gin.H{
		"Title":     "Design System - " + h.Config.SiteName,
		"Swatches":  swatches,
		"TypeScale": typeScale,
		"Buttons":   buttons,
		"Features":  Features,
	}))
}

type themeForm struct {
	Theme string `form:"theme" binding:"required,oneof=light dark"`
}

// SetTheme stores the theme preference and redirects back
func (h *Handler) SetTheme(c *gin.Context) {
	var form themeForm
	if err := c.ShouldBind(&form); err != nil {
		utils.BadRequest(c, "theme must be light or dark")
		return
	}

	session := sessions.Default(c)
	prefs := currentPrefs(c)
	prefs.Theme = form.Theme
	session.Set(prefsKey, prefs)
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("save session")
		utils.InternalServerError(c, "")
		return
	}

	c.Redirect(http.StatusSeeOther, backTo(c.Request.Referer()))
}

// backTo keeps only the path of a referer so redirects stay on this site.
// Browsers read both "//host" and "/\host" as another origin.
func backTo(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	if len(u.Path) > 1 && (u.Path[1] == '/' || u.Path[1] == '\\') {
		return "/"
	}
	if u.RawQuery != "" {
		return u.EscapedPath() + "?" + u.RawQuery
	}
	return u.EscapedPath()
}
