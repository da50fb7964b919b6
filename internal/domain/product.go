package domain

// ProductVariant — альтернативная конфигурация товара со своей ценой.
type ProductVariant struct {
	ID         string
	Name       string
	PriceCents int64
}

// Product описывает товар каталога
type Product struct {
	ID         string
	Slug       string
	Title      string
	ShortDesc  string
	LongDesc   string
	PriceCents int64
	Currency   string
	Images     []string
	Categories []string
	Specs      map[string]string
	Variants   []ProductVariant
	InStock    bool
	Featured   bool
}

// HasCategory сообщает, относится ли товар к указанной категории.
func (p *Product) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}
