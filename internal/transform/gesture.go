package transform

import (
	"fmt"
	"strings"

	"coopart/internal/apperr"
)

// GestureKind names the interaction applied to the editable tile.
type GestureKind string

const (
	GestureMove   GestureKind = "move"
	GestureResize GestureKind = "resize"
	GestureRotate GestureKind = "rotate"
)

// Gesture is a relative change produced by one interaction frame.
// Move reads DX/DY, Resize reads DW/DH, Rotate reads DR (degrees).
type Gesture struct {
	Kind GestureKind `json:"kind"`
	DX   float64     `json:"dx"`
	DY   float64     `json:"dy"`
	DW   float64     `json:"dw"`
	DH   float64     `json:"dh"`
	DR   float64     `json:"dr"`
}

// ParseGestureKind converts a string into a GestureKind.
func ParseGestureKind(value string) (GestureKind, error) {
	switch GestureKind(strings.ToLower(strings.TrimSpace(value))) {
	case GestureMove:
		return GestureMove, nil
	case GestureResize:
		return GestureResize, nil
	case GestureRotate:
		return GestureRotate, nil
	default:
		return "", fmt.Errorf("%w: unknown gesture %q", apperr.ErrValidation, value)
	}
}
