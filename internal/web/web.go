package web

import (
	"embed"
	"html/template"
)

//go:embed templates
var files embed.FS

// Templates 解析全部内嵌模板，模板以 {{define "users/index"}} 形式命名
func Templates() (*template.Template, error) {
	return template.New("blogly").Funcs(Funcs()).ParseFS(files, "templates/*.html", "templates/*/*.html")
}

// Funcs 模板辅助函数
func Funcs() template.FuncMap {
	return template.FuncMap{
		// contains 用于勾选已关联的标签/文章
		"contains": func(ids []uint, id uint) bool {
			for _, v := range ids {
				if v == id {
					return true
				}
			}
			return false
		},
	}
}
