package resource

import (
	"fmt"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Sanitize converts a normalized relative path into a C++ identifier.
// The visible part is the file stem with every byte outside [A-Za-z0-9_]
// replaced by '_'; an 8-hex digest of the full input disambiguates files
// whose stems collide across directories. The result always matches
// [A-Za-z_][A-Za-z0-9_]*. Deterministic: equal inputs yield equal outputs.
//
// True uniqueness is not guaranteed here; the Collector resolves residual
// collisions by numeric suffixing.
func Sanitize(name string) string {
	base := path.Base(name)
	stem := strings.TrimSuffix(base, path.Ext(base))

	digest := fmt.Sprintf("%016x", xxhash.Sum64String(name))[:8]

	var b strings.Builder
	for i := 0; i < len(stem); i++ {
		c := stem[i]
		if isAlnum(c) || c == '_' {
			b.WriteByte(c)
		} else {
			b.WriteByte('_')
		}
	}
	sanitized := b.String()

	if sanitized == "" || !isAlpha(sanitized[0]) {
		sanitized = "res_" + sanitized
	}
	return sanitized + "_" + digest
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}
