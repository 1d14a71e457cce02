package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseID reads a positive numeric path parameter.
func ParseID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// QueryInt reads an integer query parameter, falling back to def when it is
// absent or malformed.
func QueryInt(c *gin.Context, name string, def int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def
	}
	n, err := StringToInt(raw)
	if err != nil {
		return def
	}
	return n
}

// HasAnyQuery reports whether at least one of names is present in the query
// string, even when empty.
func HasAnyQuery(c *gin.Context, names ...string) bool {
	for _, name := range names {
		if _, ok := c.GetQuery(name); ok {
			return true
		}
	}
	return false
}
