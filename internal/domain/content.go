package domain

// TeamMember — участник команды со страницы "О нас".
type TeamMember struct {
	Name  string
	Role  string
	Bio   string
	Image string
}

// Partner — партнер компании с главной страницы.
type Partner struct {
	ID   string
	Name string
	Logo string
}

// Vacancy описывает открытую позицию на странице карьеры
type Vacancy struct {
	Slug         string
	Title        string
	Type         string // Full-time / Part-time
	Location     string // Remote / On-site / Hybrid
	Description  string
	Requirements []string
}
