package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetIDParam parses a numeric path parameter.
func GetIDParam(ctx *gin.Context, name string) (uint64, error) {
	value := ctx.Param(name)

	if value == "" {
		return 0, fmt.Errorf("%s not found", name)
	}

	id, err := strconv.ParseUint(value, 10, 32)

	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return id, nil
}
