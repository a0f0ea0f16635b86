package render

import (
	"context"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
)

type ElementKind int

const (
	KindText ElementKind = iota
	KindImage
	KindImageMissing
)

const (
	textPlaceholder  = "Text overlay"
	imagePlaceholder = "Image missing"
)

// Element is the drawable form of an overlay: geometry and style
// resolved to concrete values, content resolved to what should actually
// appear on screen.
type Element struct {
	ID       string
	Kind     ElementKind
	Content  string
	Position models.Position
	Size     models.Size
	Style    models.Style
	Selected bool
}

// ImageProber checks whether an image URL can actually be loaded. The
// video player's source check satisfies this.
type ImageProber interface {
	Probe(ctx context.Context, url string) error
}

// Renderer turns overlay records into elements layered over the video
// surface. It fills in display defaults for records that predate a
// field, and swaps broken images for a placeholder of the same
// geometry so the layout never collapses.
type Renderer struct {
	prober ImageProber
}

func NewRenderer(prober ImageProber) *Renderer {
	return &Renderer{prober: prober}
}

func (r *Renderer) Elements(ctx context.Context, overlays []models.Overlay, selectedID string) []Element {
	elements := make([]Element, 0, len(overlays))
	for _, overlay := range overlays {
		elements = append(elements, r.Element(ctx, overlay, overlay.ID == selectedID))
	}
	return elements
}

func (r *Renderer) Element(ctx context.Context, overlay models.Overlay, selected bool) Element {
	element := Element{
		ID:       overlay.ID,
		Position: overlay.Position,
		Size:     displaySize(overlay.Size),
		Style:    displayStyle(overlay.Style),
		Selected: selected,
	}

	if overlay.Type == models.OverlayTypeImage {
		if overlay.Content == "" || r.probe(ctx, overlay.Content) != nil {
			element.Kind = KindImageMissing
			element.Content = imagePlaceholder
		} else {
			element.Kind = KindImage
			element.Content = overlay.Content
		}
		return element
	}

	element.Kind = KindText
	element.Content = overlay.Content
	if element.Content == "" {
		element.Content = textPlaceholder
	}
	return element
}

func (r *Renderer) probe(ctx context.Context, url string) error {
	if r.prober == nil {
		return nil
	}
	return r.prober.Probe(ctx, url)
}

func displaySize(size models.Size) models.Size {
	if size.Width == 0 {
		size.Width = models.DefaultWidth
	}
	if size.Height == 0 {
		size.Height = models.DefaultHeight
	}
	return size
}

func displayStyle(style models.Style) models.Style {
	if style.FontSize == 0 {
		style.FontSize = models.DefaultFontSize
	}
	if style.Color == "" {
		style.Color = models.DefaultColor
	}
	if style.BackgroundColor == "" {
		style.BackgroundColor = models.DefaultBGColor
	}
	if style.Opacity == 0 {
		style.Opacity = models.DefaultOpacity
	}
	return style
}
