package generator

import (
	"fmt"
	"strings"
	"text/template"
)

// byteArray renders raw bytes as a comma-separated list of 0x%02x literals,
// wrapped every 12 values and indented to match the surrounding initializer.
func byteArray(data []byte) string {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteString(",")
			if i%12 == 0 {
				b.WriteString("\n    ")
			} else {
				b.WriteString(" ")
			}
		}
		fmt.Fprintf(&b, "0x%02x", v)
	}
	return b.String()
}

// scaleLit renders a design scale as a C++ float literal, e.g. 2.0f.
func scaleLit(scale float64) string {
	return fmt.Sprintf("%.1ff", scale)
}

// GetCommonFuncMap returns the template functions shared by the C++ emitters.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"byteArray": byteArray,
		"scaleLit":  scaleLit,
	}
}
