package model

// Book represents a title in the catalogue. Price is in cents.
type Book struct {
	BookID      int64   `json:"bookId" db:"book_id"`
	Title       string  `json:"title" db:"title"`
	Author      string  `json:"author" db:"author"`
	Price       int64   `json:"price" db:"price"`
	IsPublic    bool    `json:"isPublic" db:"is_public"`
	CategoryID  int64   `json:"categoryId" db:"category_id"`
	Description string  `json:"description" db:"description"`
	IsFeatured  bool    `json:"isFeatured" db:"is_featured"`
	Rating      float32 `json:"rating" db:"rating"`
}

// Category represents a catalogue category.
type Category struct {
	CategoryID int64  `json:"categoryId" db:"category_id"`
	Name       string `json:"name" db:"name"`
}
