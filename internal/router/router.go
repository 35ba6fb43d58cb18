package router

import (
	"encoding/gob"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/user/recipevault/internal/config"
	"github.com/user/recipevault/internal/handler"
	"github.com/user/recipevault/internal/middleware"
	"github.com/user/recipevault/internal/model"
)

// Pages every page template name, each rendered inside the base layout
var Pages = []string{
	"home", "about", "design_system",
	"categories", "category",
	"404", "error",
}

// Setup builds the engine with middleware, templates, static files and routes
func Setup(cfg *config.Config, h *handler.Handler, templates, static fs.FS, logger zerolog.Logger) *gin.Engine {
	gob.Register(model.SessionPrefs{})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// match on the raw path so an escaped "/" stays inside :name
	r.UseRawPath = true
	r.Use(gin.Recovery())

	r.Use(gzip.Gzip(gzip.DefaultCompression))

	store := cookie.NewStore([]byte(cfg.AppSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("recipevault", store))

	r.HTMLRender = LoadTemplates(templates)

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Security())
	r.Use(middleware.CORS(cfg.SiteUrl))

	r.StaticFS("/static", http.FS(static))

	RegisterRoutes(r, h)
	return r
}

// RegisterRoutes registers every route
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pages
	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/design-system", h.DesignSystem)
	r.GET("/categories", h.CategoryList)
	r.GET("/categories/:name", h.CategoryDetail)

	r.POST("/preferences/theme", h.SetTheme)

	api := r.Group("/api")
	{
		api.GET("/categories", h.APICategories)
	}

	r.NoRoute(h.NotFound)
}

// LoadTemplates assembles layouts, partials and one page per template
func LoadTemplates(templates fs.FS) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := fs.Glob(templates, "layouts/*.html")
	if err != nil {
		panic(err)
	}

	partials, err := fs.Glob(templates, "partials/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(partials)+1)
		files = append(files, layouts...)
		files = append(files, partials...)
		files = append(files, view)
		return files
	}

	for _, page := range Pages {
		files := assemble("pages/" + page + ".html")
		tmpl := template.Must(template.New(path.Base(files[0])).Funcs(funcMap).ParseFS(templates, files...))
		r.Add(page+".html", tmpl)
	}

	return r
}

var funcMap = template.FuncMap{
	"pathescape": url.PathEscape,
	"default": func(defaultValue, value interface{}) interface{} {
		switch v := value.(type) {
		case string:
			if v == "" {
				return defaultValue
			}
		case int:
			if v == 0 {
				return defaultValue
			}
		case nil:
			return defaultValue
		}
		return value
	},
}
