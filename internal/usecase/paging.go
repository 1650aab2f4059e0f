package usecase

import (
	"math"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
)

const (
	defaultPageSize = 30
	maxOffset       = math.MaxInt32
)

func window(page, size int) (limit, offset int) {
	if size <= 0 {
		size = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	if page-1 > maxOffset/size {
		return size, maxOffset
	}
	return size, (page - 1) * size
}

func hasField(vs []domain.Violation, field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

// insertBefore keeps violations in field declaration order.
func insertBefore(vs []domain.Violation, v domain.Violation, later ...string) []domain.Violation {
	for i, cur := range vs {
		for _, f := range later {
			if cur.Field == f {
				out := make([]domain.Violation, 0, len(vs)+1)
				out = append(out, vs[:i]...)
				out = append(out, v)
				return append(out, vs[i:]...)
			}
		}
	}
	return append(vs, v)
}
