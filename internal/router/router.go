package router

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"time"

	"github.com/bloglite/internal/config"
	"github.com/bloglite/internal/handler"
	"github.com/bloglite/web"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎、中间件、模板和路由。
func SetupRouter(gdb *gorm.DB, cfg config.AppConfig) (*gin.Engine, error) {
	r := gin.New()
	r.Use(RequestID(), gin.LoggerWithFormatter(accessLogFormatter), gin.Recovery())

	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if cfg.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	r.Use(secure.New(secureConfig))

	tmpl, err := loadTemplates(cfg.TemplateDir)
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	} else {
		static, err := fs.Sub(web.Files, "static")
		if err != nil {
			return nil, err
		}
		r.StaticFS("/static", http.FS(static))
	}

	api := handler.NewAPI(gdb, cfg)

	// 固定路由优先于 /:slug 匹配，gin 会先尝试静态路径段
	r.GET("/", api.ShowHome)
	r.GET("/about", api.ShowAbout)
	r.GET("/blog", api.ShowBlog)
	r.GET("/blog/:page", api.ShowBlog)
	r.GET("/:slug", api.ShowPost)
	r.NoRoute(api.NotFound)

	return r, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"formatDate":     formatDate,
		"formatDateTime": formatDateTime,
	}
}

// loadTemplates 优先读取磁盘上的模板目录，未配置时使用内嵌模板。
func loadTemplates(dir string) (*template.Template, error) {
	base := template.New("").Funcs(templateFuncs())
	if dir != "" {
		tmpl, err := base.ParseGlob(filepath.Join(dir, "*.html"))
		if err != nil {
			return nil, fmt.Errorf("parse templates in %s: %w", dir, err)
		}
		return tmpl, nil
	}

	tmpl, err := base.ParseFS(web.Files, "template/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse embedded templates: %w", err)
	}
	return tmpl, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
