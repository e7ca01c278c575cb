package postgres

import (
	"fmt"
	"strings"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/matching"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddEquals - точное совпадение, пустое значение не ограничивает
func (qb *queryBuilder) AddEquals(fieldName string, value string) {
	if value != "" {
		qb.addCondition("%s = $%d", fieldName, value)
	}
}

// AddFloatFilter - включительный диапазон. min > max не выполняется ни для одной строки.
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil && max != nil && *min > *max {
		qb.conditions = append(qb.conditions, "FALSE")
		return
	}
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// AddFlag - включенный переключатель требует true в колонке
func (qb *queryBuilder) AddFlag(fieldName string, required bool) {
	if required {
		qb.conditions = append(qb.conditions, fieldName+" = TRUE")
	}
}

// build возвращает WHERE и аргументы
func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.conditions) == 0 {
		return "", qb.args
	}
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

// flagColumns - колонки переключателей фильтра
var flagColumns = map[domain.FeatureFlag]string{
	domain.FlagHasParking:        "has_parking",
	domain.FlagHasElevator:       "has_elevator",
	domain.FlagIsFurnished:       "is_furnished",
	domain.FlagHasBalcony:        "has_balcony",
	domain.FlagInSite:            "in_site",
	domain.FlagCreditEligible:    "credit_eligible",
	domain.FlagExchangeAvailable: "exchange_available",
	domain.FlagHasPool:           "has_pool",
}

// applyFilters разбирает фильтр в WHERE с той же семантикой, что и matching.Matches
func applyFilters(f domain.ListingFilter) (string, []interface{}) {
	qb := newQueryBuilder()

	qb.AddEquals("type", string(f.Type))
	qb.AddEquals("category_main", f.Category)
	qb.AddEquals("category_sub", f.SubCategory)

	loc := f.Location.Normalize()
	qb.AddEquals("country", loc.Country)
	qb.AddEquals("state", loc.State)
	qb.AddEquals("city", loc.City)
	qb.AddEquals("district", loc.District)

	qb.AddFloatFilter("price", f.MinPrice, f.MaxPrice)
	// NULL в net_size не проходит сравнение, как и в памяти
	qb.AddFloatFilter("net_size", f.MinSize, f.MaxSize)
	if f.MaxMonthlyFee != nil {
		qb.addCondition("%s <= $%d", "monthly_fee", *f.MaxMonthlyFee)
	}

	qb.AddEquals("room_type", f.Rooms)
	qb.AddEquals("furnishing", f.Furnishing)
	qb.AddEquals("kitchen_type", f.KitchenType)
	qb.AddEquals("heating_type", f.HeatingType)
	qb.AddEquals("usage_status", f.UsageStatus)
	qb.AddEquals("deed_status", f.DeedStatus)
	qb.AddEquals("from_who", f.FromWho)

	if f.GeoCell != "" {
		qb.addCondition("starts_with(%s, $%d)", "geo_cell", f.GeoCell)
	}

	for _, flag := range f.Features.Required() {
		qb.AddFlag(flagColumns[flag], true)
	}

	if token := matching.SearchToken(f.Search); token != "" {
		qb.addCondition("strpos(%s, $%d) > 0", "search_text", token)
	}

	return qb.build()
}

// orderClause - при равенстве ключа порядок вставки (seq)
func orderClause(order domain.SortOrder) string {
	switch order {
	case domain.SortOldest:
		return "ORDER BY created_at ASC, seq ASC"
	case domain.SortPriceHigh:
		return "ORDER BY price DESC, seq ASC"
	case domain.SortPriceLow:
		return "ORDER BY price ASC, seq ASC"
	}
	return "ORDER BY created_at DESC, seq ASC"
}
