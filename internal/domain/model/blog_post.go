package model

type BlogPost struct {
	ID      int64    `json:"id"`
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"` // HTML
	Cover   string   `json:"cover"`
	Tags    []string `json:"tags"`
	Date    string   `json:"date"`
	Author  string   `json:"author"`
}
