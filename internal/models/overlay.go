package models

import "time"

const (
	OverlayTypeText  = "text"
	OverlayTypeImage = "image"
)

// Default field values applied on creation when the client omits them.
const (
	DefaultWidth    = 200.0
	DefaultHeight   = 50.0
	DefaultFontSize = 16.0
	DefaultColor    = "#ffffff"
	DefaultBGColor  = "transparent"
	DefaultOpacity  = 1.0
)

type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

type Style struct {
	FontSize        float64 `json:"fontSize" bson:"fontSize"`
	Color           string  `json:"color" bson:"color"`
	BackgroundColor string  `json:"backgroundColor" bson:"backgroundColor"`
	Opacity         float64 `json:"opacity" bson:"opacity"`
}

// Overlay is a text or image element positioned over the video surface.
// The ID is assigned by whichever store created the record and is opaque
// to everything above the storage layer.
type Overlay struct {
	ID        string    `json:"id" bson:"-"`
	Type      string    `json:"type" bson:"type"`
	Content   string    `json:"content" bson:"content"`
	Position  Position  `json:"position" bson:"position"`
	Size      Size      `json:"size" bson:"size"`
	Style     Style     `json:"style" bson:"style"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// OverlayInput is the creation payload. Type and Content are required;
// everything else defaults per DefaultStyle/DefaultSize when nil.
type OverlayInput struct {
	Type     string          `json:"type"`
	Content  string          `json:"content"`
	Position *PositionUpdate `json:"position"`
	Size     *SizeUpdate     `json:"size"`
	Style    *StyleUpdate    `json:"style"`
}

// OverlayUpdate enumerates exactly the mutable fields of an overlay.
// Nil means "leave untouched"; nested structs merge per field.
type OverlayUpdate struct {
	Type     *string         `json:"type"`
	Content  *string         `json:"content"`
	Position *PositionUpdate `json:"position"`
	Size     *SizeUpdate     `json:"size"`
	Style    *StyleUpdate    `json:"style"`
}

type PositionUpdate struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type SizeUpdate struct {
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

type StyleUpdate struct {
	FontSize        *float64 `json:"fontSize"`
	Color           *string  `json:"color"`
	BackgroundColor *string  `json:"backgroundColor"`
	Opacity         *float64 `json:"opacity"`
}

// NewOverlay builds a fully defaulted record from a creation payload.
// The caller assigns the ID.
func NewOverlay(in OverlayInput, now time.Time) Overlay {
	o := Overlay{
		Type:     in.Type,
		Content:  in.Content,
		Position: Position{X: 0, Y: 0},
		Size:     Size{Width: DefaultWidth, Height: DefaultHeight},
		Style: Style{
			FontSize:        DefaultFontSize,
			Color:           DefaultColor,
			BackgroundColor: DefaultBGColor,
			Opacity:         DefaultOpacity,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	in.Position.applyTo(&o.Position)
	in.Size.applyTo(&o.Size)
	in.Style.applyTo(&o.Style)
	return o
}

// ApplyTo merges the supplied fields into an existing record and
// refreshes UpdatedAt. Unset fields are left untouched.
func (u OverlayUpdate) ApplyTo(o *Overlay, now time.Time) {
	if u.Type != nil {
		o.Type = *u.Type
	}
	if u.Content != nil {
		o.Content = *u.Content
	}
	u.Position.applyTo(&o.Position)
	u.Size.applyTo(&o.Size)
	u.Style.applyTo(&o.Style)
	o.UpdatedAt = now
}

func (u *PositionUpdate) applyTo(p *Position) {
	if u == nil {
		return
	}
	if u.X != nil {
		p.X = *u.X
	}
	if u.Y != nil {
		p.Y = *u.Y
	}
}

func (u *SizeUpdate) applyTo(s *Size) {
	if u == nil {
		return
	}
	if u.Width != nil {
		s.Width = *u.Width
	}
	if u.Height != nil {
		s.Height = *u.Height
	}
}

func (u *StyleUpdate) applyTo(s *Style) {
	if u == nil {
		return
	}
	if u.FontSize != nil {
		s.FontSize = *u.FontSize
	}
	if u.Color != nil {
		s.Color = *u.Color
	}
	if u.BackgroundColor != nil {
		s.BackgroundColor = *u.BackgroundColor
	}
	if u.Opacity != nil {
		s.Opacity = *u.Opacity
	}
}
