package editor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
)

// Editor minimums; the resize gesture shares the same lower bounds.
const (
	minWidth  = 50.0
	minHeight = 20.0
)

// Submitter is where a finished form goes: create when the form has no
// id, update when it does. *client.Cache satisfies it.
type Submitter interface {
	Create(ctx context.Context, in models.OverlayInput) (models.Overlay, error)
	Update(ctx context.Context, id string, update models.OverlayUpdate) (models.Overlay, error)
}

// Form holds the structured overlay input under edit. Field names use
// the dotted form the inputs are named with ("position.x"), and numeric
// values are coerced with default-to-zero semantics, so the form
// tolerates whatever the inputs hand it.
type Form struct {
	id string // empty until editing an existing overlay

	overlayType string
	content     string
	position    models.Position
	size        models.Size
	style       models.Style

	initial formValues
}

type formValues struct {
	overlayType string
	content     string
	position    models.Position
	size        models.Size
	style       models.Style
}

// NewForm starts a blank create form with the same initial values the
// form UI shows.
func NewForm() *Form {
	f := &Form{
		overlayType: models.OverlayTypeText,
		position:    models.Position{X: 100, Y: 100},
		size:        models.Size{Width: models.DefaultWidth, Height: models.DefaultHeight},
		style: models.Style{
			FontSize:        models.DefaultFontSize,
			Color:           models.DefaultColor,
			BackgroundColor: models.DefaultBGColor,
			Opacity:         models.DefaultOpacity,
		},
	}
	f.initial = f.values()
	return f
}

// EditForm starts a form pre-filled from an existing overlay.
func EditForm(overlay models.Overlay) *Form {
	f := &Form{
		id:          overlay.ID,
		overlayType: overlay.Type,
		content:     overlay.Content,
		position:    overlay.Position,
		size:        overlay.Size,
		style:       overlay.Style,
	}
	f.initial = f.values()
	return f
}

// Editing reports whether submitting will update an existing record.
func (f *Form) Editing() bool {
	return f.id != ""
}

// SetField applies one input change. Numeric fields parse as floats and
// default to 0 when the value does not parse; nested names update one
// field without disturbing its siblings.
func (f *Form) SetField(name, value string) error {
	switch name {
	case "type":
		f.overlayType = value
	case "content":
		f.content = value
	case "position.x":
		f.position.X = parseNumber(value)
	case "position.y":
		f.position.Y = parseNumber(value)
	case "size.width":
		f.size.Width = parseNumber(value)
	case "size.height":
		f.size.Height = parseNumber(value)
	case "style.fontSize":
		f.style.FontSize = parseNumber(value)
	case "style.opacity":
		f.style.Opacity = parseNumber(value)
	case "style.color":
		f.style.Color = value
	case "style.backgroundColor":
		f.style.BackgroundColor = value
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// Submit sends the form to the backend, creating or updating depending
// on whether an id is present. Sizes below the editor minimums are
// raised to them first.
func (f *Form) Submit(ctx context.Context, submitter Submitter) (models.Overlay, error) {
	f.enforceMinimums()

	if !f.Editing() {
		return submitter.Create(ctx, f.input())
	}
	return submitter.Update(ctx, f.id, f.update())
}

// Cancel restores the form to the values it opened with. It performs no
// network calls.
func (f *Form) Cancel() {
	f.overlayType = f.initial.overlayType
	f.content = f.initial.content
	f.position = f.initial.position
	f.size = f.initial.size
	f.style = f.initial.style
}

// Values reports the current form state for rendering.
func (f *Form) Values() (string, string, models.Position, models.Size, models.Style) {
	return f.overlayType, f.content, f.position, f.size, f.style
}

func (f *Form) input() models.OverlayInput {
	position, size, style := f.position, f.size, f.style
	return models.OverlayInput{
		Type:     f.overlayType,
		Content:  f.content,
		Position: &models.PositionUpdate{X: &position.X, Y: &position.Y},
		Size:     &models.SizeUpdate{Width: &size.Width, Height: &size.Height},
		Style: &models.StyleUpdate{
			FontSize:        &style.FontSize,
			Color:           &style.Color,
			BackgroundColor: &style.BackgroundColor,
			Opacity:         &style.Opacity,
		},
	}
}

func (f *Form) update() models.OverlayUpdate {
	overlayType, content := f.overlayType, f.content
	position, size, style := f.position, f.size, f.style
	return models.OverlayUpdate{
		Type:     &overlayType,
		Content:  &content,
		Position: &models.PositionUpdate{X: &position.X, Y: &position.Y},
		Size:     &models.SizeUpdate{Width: &size.Width, Height: &size.Height},
		Style: &models.StyleUpdate{
			FontSize:        &style.FontSize,
			Color:           &style.Color,
			BackgroundColor: &style.BackgroundColor,
			Opacity:         &style.Opacity,
		},
	}
}

func (f *Form) enforceMinimums() {
	if f.size.Width < minWidth {
		f.size.Width = minWidth
	}
	if f.size.Height < minHeight {
		f.size.Height = minHeight
	}
}

func (f *Form) values() formValues {
	return formValues{
		overlayType: f.overlayType,
		content:     f.content,
		position:    f.position,
		size:        f.size,
		style:       f.style,
	}
}

func parseNumber(value string) float64 {
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return number
}
