package domain

// AssetRecord — запись актива в том виде, в каком её отдаёт источник данных.
// Координаты и тег приходят нетипизированными: число, числовая строка или null.
type AssetRecord struct {
	Tag        interface{} `json:"tag"`
	Latitude   interface{} `json:"latitud"`
	Longitude  interface{} `json:"longitud"`
	Company    string      `json:"empresa"`
	Substation string      `json:"nombre_subestacion"`
	Status     string      `json:"tag_estado"`
	Brand      string      `json:"tag_marca"`
}

// AssetFilter — фильтр списка активов
type AssetFilter struct {
	Statuses    []string `json:"statuses,omitempty" query:"status"`
	Substations []string `json:"substations,omitempty" query:"substation"`
	Companies   []string `json:"companies,omitempty" query:"company"`
	Limit       int      `json:"limit,omitempty" query:"limit" validate:"omitempty,min=1,max=50000"`
}

// IsEmpty проверяет, что фильтр не ограничивает выборку по атрибутам
func (f AssetFilter) IsEmpty() bool {
	return len(f.Statuses) == 0 && len(f.Substations) == 0 && len(f.Companies) == 0
}

// AssetPage — страница активов от REST-источника
type AssetPage struct {
	Items    []AssetRecord `json:"items"`
	Metadata PageMetadata  `json:"metadata"`
}

type PageMetadata struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Matches проверяет запись по атрибутному фильтру (лимит не учитывается)
func (f AssetFilter) Matches(a AssetRecord) bool {
	return matchAny(f.Statuses, a.Status) &&
		matchAny(f.Substations, a.Substation) &&
		matchAny(f.Companies, a.Company)
}

func matchAny(values []string, v string) bool {
	if len(values) == 0 {
		return true
	}
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
