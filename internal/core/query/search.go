package query

import (
	"net/url"
	"strconv"

	"catalog-service/internal/core/domain"
)

// EncodeSearch - фильтр плюс сортировка и пагинация. Значения по умолчанию не выводятся.
func EncodeSearch(req domain.SearchRequest) Params {
	p := Encode(req.Filter)
	if req.Sort != "" && req.Sort != domain.SortNewest && req.Sort.IsValid() {
		p = append(p, Param{Key: KeySort, Value: string(req.Sort)})
	}
	page := req.Page.Normalized()
	if page.Page > 1 {
		p = append(p, Param{Key: KeyPage, Value: strconv.Itoa(page.Page)})
	}
	if page.PerPage != domain.DefaultPerPage {
		p = append(p, Param{Key: KeyPerPage, Value: strconv.Itoa(page.PerPage)})
	}
	return p
}

// DecodeSearch: неизвестная сортировка -> newest, некорректная пагинация -> значения по умолчанию
func DecodeSearch(values url.Values) domain.SearchRequest {
	req := domain.SearchRequest{
		Filter: Decode(values),
		Sort:   domain.SortNewest,
	}
	if s := domain.SortOrder(first(values, KeySort)); s.IsValid() {
		req.Sort = s
	}
	req.Page.Page, _ = strconv.Atoi(first(values, KeyPage))
	req.Page.PerPage, _ = strconv.Atoi(first(values, KeyPerPage))
	req.Page = req.Page.Normalized()
	return req
}
