package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "disjoint vertically",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 0, Y: 150, Width: 100, Height: 100},
			want: false,
		},
		{
			name: "partial overlap",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 50, Y: 50, Width: 100, Height: 100},
			want: true,
		},
		{
			name: "touching edges do not overlap",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 100, Y: 0, Width: 100, Height: 100},
			want: false,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 25, Y: 25, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "empty rect never overlaps",
			a:    Rect{X: 0, Y: 0, Width: 0, Height: 0},
			b:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestWindowKindString(t *testing.T) {
	assert.Equal(t, "application", KindApplication.String())
	assert.Equal(t, "picture-in-picture", KindPictureInPicture.String())
	assert.Equal(t, "unknown", WindowKind(99).String())
}
