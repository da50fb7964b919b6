package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/enertrics/storefront-backend/internal/domain"
)

// CART USECASE

// AddItemReq — запрос на добавление строки в корзину. Данные товара приходят
// от клиента в момент добавления; корзина их не перепроверяет по каталогу.
type AddItemReq struct {
	ProductID  string
	Title      string
	PriceCents int64
	Quantity   int
	Image      string
	Variant    *VariantReq
}

// VariantReq — выбранный вариант товара в запросе добавления.
type VariantReq struct {
	ID         string
	Name       string
	PriceCents int64
}

// CartSnapshot — снимок состояния корзины для внешнего использования.
type CartSnapshot struct {
	Items           []domain.LineItem
	IsOpen          bool
	TotalItems      int
	TotalPriceCents int64
}

// CATALOG USECASE

// ListProductsReq — параметры фильтрации каталога.
// Пустые значения означают отсутствие фильтра; Limit <= 0 — без ограничения.
type ListProductsReq struct {
	Category string
	Featured bool
	Search   string
	Limit    int
}

type ListProductsRes struct {
	Products []domain.Product
	Total    int
}

// BLOG USECASE

type ListPostsReq struct {
	Featured bool
	Tag      string
	Search   string
	Limit    int
}

type ListPostsRes struct {
	Posts []domain.Post
	Total int
}

// CONTENT USECASE

type ListVacanciesReq struct {
	Location string
	Type     string
	Search   string
}

type ListVacanciesRes struct {
	Vacancies []domain.Vacancy
	Total     int
}

// CONTACT USECASE

// SubmitContactReq — заявка контактной формы до валидации.
type SubmitContactReq struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Subject string
	Message string
}

type SubmitContactRes struct {
	ID        string
	Timestamp time.Time
}

// CAREERS USECASE

// ResumeFile представляет файл резюме, загруженный через multipart/form-data.
type ResumeFile struct {
	Data     []byte // байты файла
	MimeType string // Content-Type из multipart (application/pdf)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

type ApplyReq struct {
	VacancySlug string
	Name        string
	Email       string
	Message     string
	Resume      *ResumeFile
}

type ApplyRes struct {
	ID        string
	Timestamp time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

type UploadResumeReq struct {
	VacancySlug string
	Resume      *ResumeFile
}

type UploadResumeRes struct {
	ResumeKey string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ContactSubmitted     OutboxEventType = "contact.submitted"
	ApplicationSubmitted OutboxEventType = "application.submitted"
)

// OutboxEvent — запись транзакционного outbox: уведомление, которое воркер
// опубликует в Kafka после коммита основной записи.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	EntityID    string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// VALIDATION

// ValidationError перечисляет нарушения по полям формы.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (v *ValidationError) Add(field, message string) {
	v.Fields[field] = message
}

func (v *ValidationError) Empty() bool {
	return len(v.Fields) == 0
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for field, message := range v.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(parts)

	return "validation failed: " + strings.Join(parts, "; ")
}

// MAPPERS

func NewCartSnapshot(cart *domain.Cart) *CartSnapshot {
	items := make([]domain.LineItem, len(cart.Items))
	copy(items, cart.Items)

	return &CartSnapshot{
		Items:           items,
		IsOpen:          cart.IsOpen,
		TotalItems:      cart.TotalItems(),
		TotalPriceCents: cart.TotalPriceCents(),
	}
}

func NewAddItemReq(productID, title string, priceCents int64, quantity int, image string, variant *VariantReq) *AddItemReq {
	return &AddItemReq{
		ProductID:  productID,
		Title:      title,
		PriceCents: priceCents,
		Quantity:   quantity,
		Image:      image,
		Variant:    variant,
	}
}

func NewListProductsRes(products []domain.Product) *ListProductsRes {
	return &ListProductsRes{
		Products: products,
		Total:    len(products),
	}
}

func NewListPostsRes(posts []domain.Post) *ListPostsRes {
	return &ListPostsRes{
		Posts: posts,
		Total: len(posts),
	}
}

func NewListVacanciesRes(vacancies []domain.Vacancy) *ListVacanciesRes {
	return &ListVacanciesRes{
		Vacancies: vacancies,
		Total:     len(vacancies),
	}
}

func NewSubmitContactRes(id string, timestamp time.Time) *SubmitContactRes {
	return &SubmitContactRes{
		ID:        id,
		Timestamp: timestamp,
	}
}

func NewApplyRes(id string, timestamp time.Time) *ApplyRes {
	return &ApplyRes{
		ID:        id,
		Timestamp: timestamp,
	}
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}

func NewUploadResumeReq(vacancySlug string, resume *ResumeFile) *UploadResumeReq {
	return &UploadResumeReq{
		VacancySlug: vacancySlug,
		Resume:      resume,
	}
}

func NewUploadResumeRes(resumeKey string) *UploadResumeRes {
	return &UploadResumeRes{
		ResumeKey: resumeKey,
	}
}

func NewResumeFile(data []byte, mimeType string, size int64, name string) *ResumeFile {
	return &ResumeFile{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}
