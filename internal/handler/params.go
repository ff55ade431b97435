package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campuskit/enrollment-api/pkg/errors"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// pageParams parses the skip/limit query pair shared by every listing.
func pageParams(c *gin.Context) (int, int, error) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "skip must be a non-negative integer")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("limit must be between 1 and %d", maxLimit))
	}

	return skip, limit, nil
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}
