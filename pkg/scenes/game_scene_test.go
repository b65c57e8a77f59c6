package scenes

import (
	"image/color"
	"testing"

	"github.com/decker502/whackamole/pkg/components"
)

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	tests := []struct {
		alpha float64
		want  color.RGBA
	}{
		{1, c},
		{0, color.RGBA{}},
		{0.5, color.RGBA{R: 100, G: 50, B: 25, A: 127}},
		{-1, color.RGBA{}},
		{2, c},
	}
	for _, tt := range tests {
		if got := withAlpha(c, tt.alpha); got != tt.want {
			t.Errorf("withAlpha(%v) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestButtonColor(t *testing.T) {
	if buttonColor(components.UIDisabled) != colorButtonDisabled {
		t.Error("disabled buttons should be grey")
	}
	if buttonColor(components.UINormal) == buttonColor(components.UIHovered) {
		t.Error("hovered buttons should be highlighted")
	}
}
