package rest

import (
	"net/http"
	"strings"

	"catalog-service/internal/core/port/usecases_port"
	"catalog-service/internal/core/query"
)

type FilterHandler struct {
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
	getDictionariesUC  usecases_port.GetDictionariesUseCase
}

func NewFilterHandler(getFilterOptionsUC usecases_port.GetFilterOptionsUseCase,
	getDictionariesUC usecases_port.GetDictionariesUseCase) *FilterHandler {
	return &FilterHandler{
		getFilterOptionsUC: getFilterOptionsUC,
		getDictionariesUC:  getDictionariesUC,
	}
}

// GetFilterOptions обрабатывает GET /api/v1/filters/options. Фильтр берется из тех же
// query-параметров, что и выдача.
func (h *FilterHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	filter := query.Decode(r.URL.Query())

	result, err := h.getFilterOptionsUC.Execute(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, err, "Failed to get filter options")
		return
	}

	response := FilterOptionsResponse{
		Options: make(map[string]FilterOptionResponse, len(result.Options)),
		Count:   result.Count,
	}
	for key, value := range result.Options {
		opt := FilterOptionResponse{Min: value.Min, Max: value.Max}
		if len(value.Options) > 0 {
			opt.Options = toDictionaryItems(value.Options)
		}
		response.Options[key] = opt
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetDictionaries обрабатывает GET /api/v1/dictionaries?names=a,b. Без names - все справочники.
func (h *FilterHandler) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	var names []string
	if namesStr := r.URL.Query().Get("names"); namesStr != "" {
		names = strings.Split(namesStr, ",")
	}

	dictionaries, err := h.getDictionariesUC.Execute(r.Context(), names)
	if err != nil {
		writeDomainError(w, r, err, "Failed to retrieve dictionaries")
		return
	}

	response := make(DictionaryItemsResponse, len(dictionaries))
	for key, items := range dictionaries {
		response[key] = toDictionaryItems(items)
	}
	RespondWithJSON(w, http.StatusOK, response)
}
