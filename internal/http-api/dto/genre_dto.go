package dto

// AddGenreDTO for creating a genre
type AddGenreDTO struct {
	Name string `json:"name" binding:"required,max=50"`
}

// UpdateGenreDTO renames a genre; the id travels in the body as in the
// original API.
type UpdateGenreDTO struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name" binding:"required,max=50"`
}
