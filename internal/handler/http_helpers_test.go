package handler

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "", want: 1},
		{input: "2", want: 2},
		{input: " 3 ", want: 3},
		{input: "0", want: 1},
		{input: "-4", want: 1},
		{input: "abc", want: 1},
		{input: "2.5", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parsePositiveInt(tt.input, 1); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := renderMarkdown("# Heading\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n<img src=x onerror=alert(1)>")
	if err != nil {
		t.Fatalf("renderMarkdown returned error: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<table>") {
		t.Fatalf("expected heading and table in output, got %s", out)
	}
	if strings.Contains(out, "onerror") {
		t.Fatalf("expected event handler to be sanitized, got %s", out)
	}
}

func TestRenderHTMLFillsLayout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(template.Must(template.New("page.html").Parse(`{{.Title}}|{{.SiteName}}|{{.Year}}|{{.Name}}`)))
	c.Request = httptest.NewRequest(http.MethodGet, "/about", nil)

	api := &API{siteName: "Test Blog"}
	api.renderHTML(c, http.StatusOK, "page.html", "About", &aboutPageData{Name: "Bohdan"})

	want := "About|Test Blog|" + strconv.Itoa(time.Now().Year()) + "|Bohdan"
	if w.Body.String() != want {
		t.Fatalf("expected %q, got %q", want, w.Body.String())
	}
}
