// Package web 内嵌页面模板与静态资源，使二进制可独立部署。
package web

import "embed"

// Files 包含 template/ 与 static/ 两个目录。
//
//go:embed template static
var Files embed.FS
