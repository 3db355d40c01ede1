// Package web 内嵌的页面模板
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// Templates 解析内嵌模板,供 gin.Engine.SetHTMLTemplate 使用
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}
