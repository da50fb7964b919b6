package domain

import "time"

// Post описывает публикацию блога
type Post struct {
	Slug     string
	Title    string
	Excerpt  string
	Content  string
	Author   string
	Image    string
	Date     time.Time
	Tags     []string
	Featured bool
}

// HasTag сообщает, помечена ли публикация указанным тегом.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
