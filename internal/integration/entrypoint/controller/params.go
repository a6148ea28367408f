package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// optionalPositiveInt64 parses query parameter name. It returns nil when the
// parameter is absent and ok=false when it is not a positive integer.
func optionalPositiveInt64(ctx *gin.Context, name string) (value *int64, ok bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, false
	}
	return &v, true
}

// optionalInt parses query parameter name. It returns nil when the parameter
// is absent and ok=false when it is not an integer.
func optionalInt(ctx *gin.Context, name string) (value *int, ok bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// pathID parses the :id path parameter as a positive integer.
func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
