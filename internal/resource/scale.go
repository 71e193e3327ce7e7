package resource

import (
	"regexp"
	"strconv"
)

// scalePattern matches the @Nx density marker when immediately followed by an
// image extension. Case-insensitive; the first match anywhere in the name wins.
var scalePattern = regexp.MustCompile(`(?i)@(\d+)x\.(png|jpg|jpeg|bmp)`)

// ParseScale extracts the design scale from a file name. Names without a
// recognizable @Nx marker default to 1.0. The digits are not range-checked,
// so "@0x.png" yields 0.
func ParseScale(filename string) float64 {
	m := scalePattern.FindStringSubmatch(filename)
	if m == nil {
		return 1.0
	}
	scale, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 1.0
	}
	return scale
}
