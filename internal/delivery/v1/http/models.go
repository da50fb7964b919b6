package http

import (
	"time"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/internal/usecase"
)

// Запросы.

type addItemRequest struct {
	ProductID  string          `json:"productId"`
	Title      string          `json:"title"`
	PriceCents int64           `json:"priceCents"`
	Quantity   int             `json:"quantity"`
	Image      string          `json:"image"`
	Variant    *variantRequest `json:"variant,omitempty"`
}

type variantRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Ответы.

type cartResponse struct {
	Items           []cartItemResponse `json:"items"`
	IsOpen          bool               `json:"isOpen"`
	TotalItems      int                `json:"totalItems"`
	TotalPriceCents int64              `json:"totalPriceCents"`
}

type cartItemResponse struct {
	ID         string               `json:"id"`
	ProductID  string               `json:"productId"`
	Title      string               `json:"title"`
	PriceCents int64                `json:"priceCents"`
	Quantity   int                  `json:"quantity"`
	Image      string               `json:"image,omitempty"`
	Variant    *cartVariantResponse `json:"variant,omitempty"`
}

type cartVariantResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

type productResponse struct {
	ID         string                   `json:"id"`
	Slug       string                   `json:"slug"`
	Title      string                   `json:"title"`
	ShortDesc  string                   `json:"shortDesc"`
	LongDesc   string                   `json:"longDesc,omitempty"`
	PriceCents int64                    `json:"priceCents"`
	Currency   string                   `json:"currency"`
	Images     []string                 `json:"images"`
	Categories []string                 `json:"categories"`
	Specs      map[string]string        `json:"specs,omitempty"`
	Variants   []productVariantResponse `json:"variants"`
	InStock    bool                     `json:"inStock"`
	Featured   bool                     `json:"featured"`
}

type productVariantResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

type postResponse struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content,omitempty"`
	Author   string   `json:"author"`
	Image    string   `json:"image,omitempty"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

type teamMemberResponse struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image,omitempty"`
}

type partnerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type vacancyResponse struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

type submissionResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// Мапперы domain -> DTO.

func toCartResponse(snapshot *usecase.CartSnapshot) *cartResponse {
	items := make([]cartItemResponse, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, toCartItemResponse(item))
	}

	return &cartResponse{
		Items:           items,
		IsOpen:          snapshot.IsOpen,
		TotalItems:      snapshot.TotalItems,
		TotalPriceCents: snapshot.TotalPriceCents,
	}
}

func toCartItemResponse(item domain.LineItem) cartItemResponse {
	res := cartItemResponse{
		ID:         item.ID,
		ProductID:  item.ProductID,
		Title:      item.Title,
		PriceCents: item.PriceCents,
		Quantity:   item.Quantity,
		Image:      item.Image,
	}
	if item.Variant != nil {
		res.Variant = &cartVariantResponse{
			ID:         item.Variant.ID,
			Name:       item.Variant.Name,
			PriceCents: item.Variant.PriceCents,
		}
	}

	return res
}

func toProductResponse(product *domain.Product) *productResponse {
	variants := make([]productVariantResponse, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, productVariantResponse(v))
	}

	return &productResponse{
		ID:         product.ID,
		Slug:       product.Slug,
		Title:      product.Title,
		ShortDesc:  product.ShortDesc,
		LongDesc:   product.LongDesc,
		PriceCents: product.PriceCents,
		Currency:   product.Currency,
		Images:     product.Images,
		Categories: product.Categories,
		Specs:      product.Specs,
		Variants:   variants,
		InStock:    product.InStock,
		Featured:   product.Featured,
	}
}

func toProductListResponse(products []domain.Product) []productResponse {
	res := make([]productResponse, 0, len(products))
	for i := range products {
		res = append(res, *toProductResponse(&products[i]))
	}

	return res
}

func toPostResponse(post *domain.Post, withContent bool) *postResponse {
	res := &postResponse{
		Slug:     post.Slug,
		Title:    post.Title,
		Excerpt:  post.Excerpt,
		Author:   post.Author,
		Image:    post.Image,
		Date:     post.Date.Format("2006-01-02"),
		Tags:     post.Tags,
		Featured: post.Featured,
	}
	if withContent {
		res.Content = post.Content
	}

	return res
}

func toPostListResponse(posts []domain.Post) []postResponse {
	res := make([]postResponse, 0, len(posts))
	for i := range posts {
		// В списке отдаем только анонс, без полного текста.
		res = append(res, *toPostResponse(&posts[i], false))
	}

	return res
}

func toTeamResponse(team []domain.TeamMember) []teamMemberResponse {
	res := make([]teamMemberResponse, 0, len(team))
	for _, member := range team {
		res = append(res, teamMemberResponse(member))
	}

	return res
}

func toPartnersResponse(partners []domain.Partner) []partnerResponse {
	res := make([]partnerResponse, 0, len(partners))
	for _, partner := range partners {
		res = append(res, partnerResponse(partner))
	}

	return res
}

func toVacanciesResponse(vacancies []domain.Vacancy) []vacancyResponse {
	res := make([]vacancyResponse, 0, len(vacancies))
	for _, vacancy := range vacancies {
		res = append(res, vacancyResponse(vacancy))
	}

	return res
}
