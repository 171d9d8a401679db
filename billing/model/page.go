package model

const (
	DefaultPageSize int32 = 10
	MaxPageSize     int32 = 100
)

// NormalizePage clamps list paging to [1, MaxPageSize] and a non-negative
// offset.
func NormalizePage(limit, offset int32) (int32, int32) {
	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
