package models

const (
	DefaultLinkIcon  = "link"
	DefaultLinkColor = "#0080FF"
)

// Link is one outbound link on an owner's page. Positions of one owner's
// links always form 1..N.
type Link struct {
	ID         string `json:"id" db:"id"`
	OwnerID    string `json:"ownerId" db:"owner_id"`
	Title      string `json:"title" db:"title"`
	URL        string `json:"url" db:"url"`
	Icon       string `json:"icon" db:"icon"`
	Color      string `json:"color" db:"color"`
	Position   int    `json:"position" db:"position"`
	ClickCount int64  `json:"clickCount" db:"click_count"`
}

// NewLink is the payload for adding a link.
type NewLink struct {
	Title string `json:"title" validate:"required,max=200"`
	URL   string `json:"url" validate:"required,url"`
	Icon  string `json:"icon" validate:"omitempty,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// LinkPatch is a partial update. Only non-nil fields are applied.
type LinkPatch struct {
	Title    *string `json:"title" validate:"omitnil,min=1,max=200"`
	URL      *string `json:"url" validate:"omitnil,url"`
	Icon     *string `json:"icon" validate:"omitnil,min=1,max=50"`
	Color    *string `json:"color" validate:"omitnil,hexcolor"`
	Position *int    `json:"position" validate:"omitnil,gte=1"`
}

func (l *Link) Public() PublicLink {
	return PublicLink{
		ID:       l.ID,
		Title:    l.Title,
		URL:      l.URL,
		Icon:     l.Icon,
		Color:    l.Color,
		Position: l.Position,
	}
}
