package rest

import (
	"net/http"
	"net/url"
	"strconv"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"
	"catalog-service/internal/core/query"
)

// PagingConfig - размеры страницы из конфигурации сервиса
type PagingConfig struct {
	DefaultPerPage int
	MaxPerPage     int
}

type SearchHandler struct {
	findUC   usecases_port.FindListingsUseCase
	paging   PagingConfig
	basePath string
}

func NewSearchHandler(findUC usecases_port.FindListingsUseCase, paging PagingConfig) *SearchHandler {
	if paging.DefaultPerPage < 1 || paging.DefaultPerPage > domain.MaxPerPage {
		paging.DefaultPerPage = domain.DefaultPerPage
	}
	if paging.MaxPerPage < paging.DefaultPerPage || paging.MaxPerPage > domain.MaxPerPage {
		paging.MaxPerPage = domain.MaxPerPage
	}
	return &SearchHandler{findUC: findUC, paging: paging, basePath: apiPrefix}
}

// applyPaging подставляет размер страницы из конфигурации, когда параметр не задан или вне лимита
func (h *SearchHandler) applyPaging(req *domain.SearchRequest, values url.Values) {
	perPage := parsePositiveInt(values.Get(query.KeyPerPage))
	if perPage == 0 || perPage > h.paging.MaxPerPage {
		perPage = h.paging.DefaultPerPage
	}
	req.Page.PerPage = perPage
}

// Search возвращает обработчик одного из пространств выдачи
func (h *SearchHandler) Search(route query.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		req := query.ParseRoute(route, values)
		h.applyPaging(&req, values)

		contextkeys.LoggerFromContext(r.Context()).Debug("Processing search request", port.Fields{
			"handler":  "Search",
			"route":    string(route),
			"page":     req.Page.Page,
			"per_page": req.Page.PerPage,
		})

		result, err := h.findUC.Execute(r.Context(), req)
		if err != nil {
			writeDomainError(w, r, err, "Failed to find listings")
			return
		}

		listings := make([]ListingResponse, 0, len(result.Listings))
		for _, l := range result.Listings {
			listings = append(listings, toListingResponse(l))
		}

		totalPages := 0
		if result.PerPage > 0 {
			totalPages = (result.TotalCount + result.PerPage - 1) / result.PerPage
		}

		RespondWithJSON(w, http.StatusOK, PaginatedListingsResponse{
			Listings:   listings,
			Total:      result.TotalCount,
			Page:       result.Page,
			PerPage:    result.PerPage,
			TotalPages: totalPages,
			URL:        query.BuildURL(h.basePath, req),
		})
	}
}

// FilterURL обрабатывает GET /api/v1/filters/url: каноническая ссылка для фильтра из query string
func (h *SearchHandler) FilterURL(w http.ResponseWriter, r *http.Request) {
	req := query.ParseRoute(query.RouteCombined, r.URL.Query())
	route := query.RouteFor(req.Filter)

	RespondWithJSON(w, http.StatusOK, FilterURLResponse{
		Route: string(route),
		Query: query.EncodeSearch(req).Without(query.KeyType).Encode(),
		URL:   query.BuildURL(h.basePath, req),
	})
}

func parsePositiveInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
