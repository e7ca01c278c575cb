// Package query - двунаправленное отображение фильтра в плоский набор параметров URL.
package query

import (
	"net/url"
	"strings"
)

// Ключи query string
const (
	KeyType          = "type"
	KeyCategory      = "category"
	KeySubCategory   = "subCategory"
	KeyCountry       = "country"
	KeyState         = "state"
	KeyCity          = "city"
	KeyDistrict      = "district"
	KeyMinPrice      = "minPrice"
	KeyMaxPrice      = "maxPrice"
	KeySearch        = "search"
	KeyRooms         = "rooms"
	KeyMinSize       = "minSize"
	KeyMaxSize       = "maxSize"
	KeyFurnishing    = "furnishing"
	KeyKitchenType   = "kitchenType"
	KeyHeatingType   = "heatingType"
	KeyUsageStatus   = "usageStatus"
	KeyDeedStatus    = "deedStatus"
	KeyFromWho       = "fromWho"
	KeyMaxMonthlyFee = "maxMonthlyFee"
	KeyGeoCell       = "geoCell"

	KeySort    = "sort"
	KeyPage    = "page"
	KeyPerPage = "perPage"
)

// Param - одна пара ключ/значение
type Param struct {
	Key   string
	Value string
}

// Params - упорядоченный набор параметров. Порядок фиксирован, поэтому
// один и тот же фильтр всегда дает одну и ту же строку.
type Params []Param

func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// Without возвращает копию без указанного ключа
func (p Params) Without(key string) Params {
	out := make(Params, 0, len(p))
	for _, param := range p {
		if param.Key != key {
			out = append(out, param)
		}
	}
	return out
}

func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for _, param := range p {
		v.Add(param.Key, param.Value)
	}
	return v
}

// Encode - query string в порядке параметров (url.Values.Encode сортирует ключи)
func (p Params) Encode() string {
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}
