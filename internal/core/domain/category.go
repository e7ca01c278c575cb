package domain

// Category - двухуровневая пара {main, sub}
type Category struct {
	Main string `json:"main" bson:"main"`
	Sub  string `json:"sub,omitempty" bson:"sub,omitempty"`
}

const (
	CategoryResidential = "Konut"
	CategoryCommercial  = "İşyeri"
	CategoryLand        = "Arsa"
	CategoryBuilding    = "Bina"
	CategoryTourism     = "Turistik Tesis"
)

// CategoryMains - порядок основных категорий для справочника
var CategoryMains = []string{
	CategoryResidential,
	CategoryCommercial,
	CategoryLand,
	CategoryBuilding,
	CategoryTourism,
}

// CategoryTree - полное отображение main -> допустимые sub
var CategoryTree = map[string][]string{
	CategoryResidential: {"Daire", "Residence", "Müstakil Ev", "Villa", "Çiftlik Evi", "Köşk & Konak", "Yalı", "Yazlık", "Prefabrik Ev"},
	CategoryCommercial:  {"Ofis", "Dükkan & Mağaza", "Depo & Antrepo", "Fabrika", "Plaza Katı", "Kafe & Bar", "Restoran"},
	CategoryLand:        {"Konut İmarlı", "Ticari İmarlı", "Sanayi İmarlı", "Tarla", "Bağ & Bahçe", "Zeytinlik"},
	CategoryBuilding:    {"Apartman", "İş Hanı", "Komple Bina"},
	CategoryTourism:     {"Otel", "Apart Otel", "Butik Otel", "Pansiyon", "Tatil Köyü"},
}

// IsValidMainCategory - main известна
func IsValidMainCategory(main string) bool {
	_, ok := CategoryTree[main]
	return ok
}

// IsValidSubCategory - sub допустима внутри main
func IsValidSubCategory(main, sub string) bool {
	for _, allowed := range CategoryTree[main] {
		if allowed == sub {
			return true
		}
	}
	return false
}

// Validate проверяет пару. Пустой sub допустим, sub без main - нет.
func (c Category) Validate() error {
	if !IsValidMainCategory(c.Main) {
		return ErrUnknownCategory
	}
	if c.Sub != "" && !IsValidSubCategory(c.Main, c.Sub) {
		return ErrSubCategoryOutsideMain
	}
	return nil
}

// IsLand - участок несет LandDetails вместо наборов признаков
func (c Category) IsLand() bool {
	return c.Main == CategoryLand
}
