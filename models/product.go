package models

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Comments    []Comment `json:"comments,omitempty"`
}

type Reviewer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Comment struct {
	ID      string   `json:"id"`
	User    Reviewer `json:"user"`
	Rating  int      `json:"rating"`
	Content string   `json:"content"`
	Date    string   `json:"date"`
	Images  []string `json:"images,omitempty"`
}
