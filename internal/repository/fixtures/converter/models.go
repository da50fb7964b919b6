package converter

import "encoding/json"

// ProductModel — запись data/products.json.
// Цены в фикстурах — десятичные числа в валюте, в domain они переводятся в центы.
type ProductModel struct {
	ID         string            `json:"id"`
	Slug       string            `json:"slug"`
	Title      string            `json:"title"`
	ShortDesc  string            `json:"shortDesc"`
	LongDesc   string            `json:"longDesc"`
	Price      json.Number       `json:"price"`
	Currency   string            `json:"currency"`
	Images     []string          `json:"images"`
	Categories []string          `json:"categories"`
	Specs      map[string]string `json:"specs"`
	Variants   []VariantModel    `json:"variants"`
	InStock    bool              `json:"inStock"`
	Featured   bool              `json:"featured"`
}

// VariantModel — вариант товара в фикстурах.
type VariantModel struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

// PostModel — запись data/posts.json.
type PostModel struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Image    string   `json:"image"`
	Date     string   `json:"date"` // YYYY-MM-DD
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

// TeamMemberModel — запись data/team.json.
type TeamMemberModel struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// PartnerModel — запись data/partners.json.
type PartnerModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// VacancyModel — запись data/vacancies.json.
type VacancyModel struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}
