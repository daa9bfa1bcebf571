package v1

import (
	"strconv"

	"github.com/dainonaka/vsstats/internal/apperrors"
)

// parseID accepts only well-formed positive decimal integers. Anything
// else is rejected before it can reach a query. Queries are parameterized
// anyway; this is the secondary validation layer.
func parseID(raw string) (uint, error) {
	if raw == "" {
		return 0, apperrors.NotFound("invalid id")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, apperrors.NotFound("invalid id")
		}
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, apperrors.NotFound("invalid id")
	}
	return uint(n), nil
}
