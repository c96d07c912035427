package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/retailpos/backend/internal/domain/shared"
)

// applySort applies whitelisted ordering to the query
func applySort(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool, defaultField string) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, allowedFields, defaultField)
	dir := ValidateSortOrder(filter.OrderDir)
	return query.Order(fmt.Sprintf("%s %s", field, dir))
}

// queryPage runs a counted, sorted, paginated query and wraps the result.
// The base query is made reusable so the count does not pollute the list query.
func queryPage[T any](base *gorm.DB, filter shared.Filter, allowedFields map[string]bool, defaultField string) (shared.Paginated[*T], error) {
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[*T]{}, err
	}

	query := applySort(base, filter, allowedFields, defaultField)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	query = query.Offset((page - 1) * pageSize).Limit(pageSize)

	var items []*T
	if err := query.Find(&items).Error; err != nil {
		return shared.Paginated[*T]{}, err
	}
	return shared.NewPaginated(items, total, page, pageSize), nil
}
