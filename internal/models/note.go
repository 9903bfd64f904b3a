package models

// PersonalNote is a private note kept in the user's cache-backed notebook.
type PersonalNote struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updatedAt"`
}
