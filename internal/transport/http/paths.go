package http

import (
	"strconv"
	"strings"
)

// splitID extracts the numeric id segment that follows prefix and returns the
// remaining subpath, if any, with its leading slash.
func splitID(path, prefix string) (int, string, bool) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path || rest == "" {
		return 0, "", false
	}
	seg, tail, _ := strings.Cut(rest, "/")
	id, err := strconv.Atoi(seg)
	if err != nil || id <= 0 {
		return 0, "", false
	}
	if tail != "" {
		tail = "/" + tail
	}
	return id, tail, true
}
