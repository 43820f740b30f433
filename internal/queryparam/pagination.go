package queryparam

import "strconv"

const (
	defaultLimit  = 20
	defaultOffset = 0
	maxLegacySize = 100
)

// parsePagination resolves limit/offset per the override rules: `limit`
// overrides the legacy `_size` (capped at 100); `offset` overrides the
// 1-based legacy `_p`, converted as (_p-1)*limit+1.
func parsePagination(limitParam, offsetParam, sizeParam, pParam string) (limit, offset int) {
	limit = defaultLimit
	if sizeParam != "" {
		if n, err := strconv.Atoi(sizeParam); err == nil && n >= 0 {
			limit = n
			if limit > maxLegacySize {
				limit = maxLegacySize
			}
		}
	}
	if limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n >= 0 {
			limit = n
		}
	}

	offset = defaultOffset
	if pParam != "" {
		if p, err := strconv.Atoi(pParam); err == nil && p >= 1 {
			offset = (p-1)*limit + 1
		}
	}
	if offsetParam != "" {
		if n, err := strconv.Atoi(offsetParam); err == nil && n >= 0 {
			offset = n
		}
	}

	return limit, offset
}
