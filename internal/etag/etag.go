// Package etag computes weak entity tags for derived responses and
// evaluates If-None-Match preconditions against them.
package etag

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Generate returns a weak ETag for a response body. Equal bodies always
// produce equal tags.
func Generate(body []byte) string {
	return fmt.Sprintf("W/\"%016x\"", xxhash.Sum64(body))
}

// Parse extracts the opaque value from a quoted ETag string.
// Handles both strong ("value") and weak (W/"value") ETags.
func Parse(etagHeader string) string {
	etagHeader = strings.TrimSpace(etagHeader)
	etagHeader = strings.TrimPrefix(etagHeader, "W/")

	if len(etagHeader) >= 2 && etagHeader[0] == '"' && etagHeader[len(etagHeader)-1] == '"' {
		return etagHeader[1 : len(etagHeader)-1]
	}
	return etagHeader
}

// NoneMatch reports whether an If-None-Match header value does NOT match the
// current ETag, i.e. whether the full response must be sent. The header may
// list several tags; comparison is weak as required for GET.
func NoneMatch(ifNoneMatch string, currentETag string) bool {
	ifNoneMatch = strings.TrimSpace(ifNoneMatch)
	if ifNoneMatch == "" {
		return true
	}
	if ifNoneMatch == "*" {
		return currentETag == ""
	}

	current := Parse(currentETag)
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		if Parse(candidate) == current {
			return false
		}
	}
	return true
}
