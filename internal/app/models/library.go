package models

// LibraryBook is one catalog entry.
type LibraryBook struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Publisher     string `json:"publisher"`
	Category      string `json:"category"`
	Edition       string `json:"edition,omitempty"`
	PublishedYear string `json:"publishedYear,omitempty"`
	Description   string `json:"description,omitempty"`
	Image         string `json:"image"`
}

// CategoryLabel returns the display name of the book's category.
func (b LibraryBook) CategoryLabel() string {
	return BookCategories.Label(b.Category)
}

// CategoryFilter is one entry of the library's category filter bar.
type CategoryFilter struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
}
