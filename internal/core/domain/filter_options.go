package domain

// FilterOption - описание одного фильтра для формы: либо список значений, либо диапазон
type FilterOption struct {
	Options []DictionaryItem
	Min     *float64
	Max     *float64
}

// FilterOptionsResult - опции фильтров для текущего запроса и число подходящих объявлений
type FilterOptionsResult struct {
	Options map[string]FilterOption
	Count   int
}

// DictionaryItem - элемент справочника
type DictionaryItem struct {
	SystemName  string
	DisplayName string
}
