package handler

import (
	"html/template"
	"net/http"

	"github.com/bloglite/internal/db"
	"github.com/bloglite/internal/service"
	"github.com/gin-gonic/gin"
)

// homePageData 对应 index.html。
type homePageData struct {
	layoutData
	Posts []db.Post
}

// aboutPageData 对应 about.html。
type aboutPageData struct {
	layoutData
	Name string
}

// blogPageData 对应 blog.html。
type blogPageData struct {
	layoutData
	Posts      []db.Post
	Pagination service.Pagination
}

// postPageData 对应 post.html，Content 为渲染并清洗后的正文。
type postPageData struct {
	layoutData
	Post    *db.Post
	Content template.HTML
}

type notFoundPageData struct {
	layoutData
}

type errorPageData struct {
	layoutData
	Message string
}

// ShowHome renders the homepage with the latest posts.
func (a *API) ShowHome(c *gin.Context) {
	ctx, cancel := a.queryContext(c)
	defer cancel()

	posts, err := a.latest.Get(ctx, homePostCount)
	if err != nil {
		a.renderError(c, err)
		return
	}

	a.renderHTML(c, http.StatusOK, "index.html", "Home", &homePageData{Posts: posts})
}

// ShowAbout renders the static about page.
func (a *API) ShowAbout(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "about.html", "About", &aboutPageData{Name: a.aboutName})
}

// ShowBlog renders one page of the blog listing. Invalid page values fall back to 1.
func (a *API) ShowBlog(c *gin.Context) {
	page := parsePositiveInt(c.Param("page"), 1)

	ctx, cancel := a.queryContext(c)
	defer cancel()

	posts, err := a.posts.GetList(ctx, page, blogPageSize)
	if err != nil {
		a.renderError(c, err)
		return
	}

	total, err := a.posts.GetTotalCount(ctx)
	if err != nil {
		a.renderError(c, err)
		return
	}

	a.renderHTML(c, http.StatusOK, "blog.html", "Blog", &blogPageData{
		Posts:      posts,
		Pagination: service.NewPagination(page, total, blogPageSize),
	})
}

// ShowPost renders a post resolved by its url key, or the not-found page when absent.
func (a *API) ShowPost(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := a.queryContext(c)
	defer cancel()

	post, err := a.posts.GetByURLKey(ctx, slug)
	if err != nil {
		a.renderError(c, err)
		return
	}
	if post == nil {
		a.renderNotFound(c, http.StatusOK)
		return
	}

	content, err := renderMarkdown(post.Content)
	if err != nil {
		a.renderError(c, err)
		return
	}

	a.renderHTML(c, http.StatusOK, "post.html", post.Title, &postPageData{
		Post:    post,
		Content: content,
	})
}

// NotFound handles paths that match no route.
func (a *API) NotFound(c *gin.Context) {
	a.renderNotFound(c, http.StatusNotFound)
}

func (a *API) renderNotFound(c *gin.Context, status int) {
	a.renderHTML(c, status, "not-found.html", "Not Found", &notFoundPageData{})
}
