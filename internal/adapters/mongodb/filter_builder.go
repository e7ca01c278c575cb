package mongodb

import (
	"regexp"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/matching"

	"go.mongodb.org/mongo-driver/bson"
)

// matchNothing - условие, которому не удовлетворяет ни один документ
var matchNothing = bson.E{Key: "$expr", Value: false}

// flagFields - поля документа для переключателей фильтра
var flagFields = map[domain.FeatureFlag]string{
	domain.FlagHasParking:        "building.has_parking",
	domain.FlagHasElevator:       "building.has_elevator",
	domain.FlagIsFurnished:       "interior.is_furnished",
	domain.FlagHasBalcony:        "interior.has_balcony",
	domain.FlagInSite:            "building.in_site",
	domain.FlagExchangeAvailable: "exchange_available",
	domain.FlagHasPool:           "building.has_pool",
}

type filterBuilder struct {
	conds bson.D
}

func (b *filterBuilder) equals(field, value string) {
	if value != "" {
		b.conds = append(b.conds, bson.E{Key: field, Value: value})
	}
}

func (b *filterBuilder) rangeOf(field string, min, max *float64) {
	if min == nil && max == nil {
		return
	}
	if min != nil && max != nil && *min > *max {
		b.conds = append(b.conds, matchNothing)
		return
	}
	r := bson.D{}
	if min != nil {
		r = append(r, bson.E{Key: "$gte", Value: *min})
	}
	if max != nil {
		r = append(r, bson.E{Key: "$lte", Value: *max})
	}
	b.conds = append(b.conds, bson.E{Key: field, Value: r})
}

// buildFilter переводит фильтр в запрос MongoDB с семантикой matching.Matches
func buildFilter(f domain.ListingFilter) bson.D {
	b := &filterBuilder{conds: bson.D{}}

	b.equals("type", string(f.Type))
	b.equals("category.main", f.Category)
	b.equals("category.sub", f.SubCategory)

	loc := f.Location.Normalize()
	b.equals("location.country", loc.Country)
	b.equals("location.state", loc.State)
	b.equals("location.city", loc.City)
	b.equals("location.district", loc.District)

	b.rangeOf("price", f.MinPrice, f.MaxPrice)
	b.rangeOf("specs.net_size", f.MinSize, f.MaxSize)
	if f.MaxMonthlyFee != nil {
		b.conds = append(b.conds, bson.E{Key: "specs.monthly_fee", Value: bson.D{{Key: "$lte", Value: *f.MaxMonthlyFee}}})
	}

	b.equals("specs.room_type", f.Rooms)
	b.equals("specs.furnishing", f.Furnishing)
	b.equals("interior.kitchen_type", f.KitchenType)
	b.equals("specs.heating_type", f.HeatingType)
	b.equals("specs.usage_status", f.UsageStatus)
	b.equals("specs.deed_status", f.DeedStatus)
	b.equals("specs.from_who", f.FromWho)

	if f.GeoCell != "" {
		b.conds = append(b.conds, bson.E{Key: "geo_cell", Value: bson.D{{Key: "$regex", Value: "^" + regexp.QuoteMeta(f.GeoCell)}}})
	}

	for _, flag := range f.Features.Required() {
		if flag == domain.FlagCreditEligible {
			// флаг объявления или флаг участка
			b.conds = append(b.conds, bson.E{Key: "$or", Value: bson.A{
				bson.D{{Key: "credit_eligible", Value: true}},
				bson.D{{Key: "land.credit_eligible", Value: true}},
			}})
			continue
		}
		b.conds = append(b.conds, bson.E{Key: flagFields[flag], Value: true})
	}

	if token := matching.SearchToken(f.Search); token != "" {
		b.conds = append(b.conds, bson.E{Key: "search_text", Value: bson.D{{Key: "$regex", Value: regexp.QuoteMeta(token)}}})
	}

	return b.conds
}

// sortSpec - при равенстве ключа порядок вставки (seq)
func sortSpec(order domain.SortOrder) bson.D {
	switch order {
	case domain.SortOldest:
		return bson.D{{Key: "created_at", Value: 1}, {Key: "seq", Value: 1}}
	case domain.SortPriceHigh:
		return bson.D{{Key: "price", Value: -1}, {Key: "seq", Value: 1}}
	case domain.SortPriceLow:
		return bson.D{{Key: "price", Value: 1}, {Key: "seq", Value: 1}}
	}
	return bson.D{{Key: "created_at", Value: -1}, {Key: "seq", Value: 1}}
}
