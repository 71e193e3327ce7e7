package generator

import (
	"os"
	"text/template"

	"github.com/yuchenui/resgen/internal/templates"
)

// executeTemplate loads a template, parses it with the provided funcMap, and
// executes it to the output path. An existing file at outputPath is
// overwritten unconditionally.
func executeTemplate(tmplName string, outputPath string, data interface{}, funcMap template.FuncMap) error {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return err
	}

	if funcMap == nil {
		funcMap = template.FuncMap{}
	}

	t, err := template.New(tmplName).Funcs(funcMap).Parse(tmplContent)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return t.Execute(f, data)
}
