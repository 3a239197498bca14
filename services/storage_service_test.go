package services

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			"versioned delivery url",
			"https://res.cloudinary.com/demo/image/upload/v1712345678/gallery/abc-123.jpg",
			"gallery/abc-123",
		},
		{
			"no version segment",
			"https://res.cloudinary.com/demo/image/upload/services/xyz.png",
			"services/xyz",
		},
		{
			"non-cloudinary url",
			"https://example.com/photo.jpg",
			"",
		},
		{
			"folder starting with v is not a version",
			"https://res.cloudinary.com/demo/image/upload/videos/clip.mp4",
			"videos/clip",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PublicIDFromURL(tt.url); got != tt.want {
				t.Errorf("PublicIDFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
