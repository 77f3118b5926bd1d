package domain

// FaqDTO represents an FAQ entry in API responses.
type FaqDTO struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Text      string  `json:"text"`
	CreatedAt int64   `json:"created_at"`
	Creator   UserDTO `json:"creator"`
}

// ToDTO converts a FaqModel to its API representation. The creator and
// its role must be preloaded.
func (m *FaqModel) ToDTO() FaqDTO {
	return FaqDTO{
		ID:        m.ID,
		Title:     m.Title,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		Creator:   m.Creator.ToDTO(),
	}
}

// CreateFaqRequest creates a new FAQ entry.
type CreateFaqRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Text  string `json:"text" binding:"required"`
}
