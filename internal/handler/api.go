package handler

import (
	"net/http"
	"time"

	"github.com/bloglite/internal/config"
	"github.com/bloglite/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	homePostCount = 3
	blogPageSize  = 2

	// RequestIDKey 是请求 ID 在 gin.Context 中的键名，由路由中间件写入。
	RequestIDKey = "requestID"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	posts        *service.PostService
	latest       *service.LatestPosts
	siteName     string
	aboutName    string
	queryTimeout time.Duration
}

// layoutData 是所有页面模板共享的头尾信息。
type layoutData struct {
	Title    string
	SiteName string
	Year     int
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &API{
		posts:        service.NewPostService(gdb),
		latest:       service.NewLatestPosts(gdb),
		siteName:     cfg.SiteName,
		aboutName:    cfg.AboutName,
		queryTimeout: timeout,
	}
}

func (a *API) layout(title string) layoutData {
	return layoutData{
		Title:    title,
		SiteName: a.siteName,
		Year:     time.Now().Year(),
	}
}

// pageData 由各页面数据结构通过内嵌 layoutData 实现。
type pageData interface {
	setLayout(layoutData)
}

func (l *layoutData) setLayout(layout layoutData) {
	*l = layout
}

// renderHTML 在渲染前填充页面公共的标题、站点名和年份。
func (a *API) renderHTML(c *gin.Context, status int, template, title string, data pageData) {
	data.setLayout(a.layout(title))
	c.HTML(status, template, data)
}

// renderError 将错误挂到上下文交由访问日志输出，并渲染 500 页面。
func (a *API) renderError(c *gin.Context, err error) {
	c.Error(err)
	a.renderHTML(c, http.StatusInternalServerError, "error.html", "Error", &errorPageData{
		Message: "Something went wrong while loading this page.",
	})
}
