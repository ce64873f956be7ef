package core

import "testing"

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name           string
		sw, sh, w, h   int
		x, y, right, b int
	}{
		{"board panel", 80, 40, 24, 3, 28, 18, 52, 21},
		{"odd leftover", 11, 6, 4, 3, 3, 1, 7, 4},
		{"larger than screen", 10, 4, 14, 6, -2, -1, 12, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := CenteredRect(tc.sw, tc.sh, tc.w, tc.h)
			if r.X != tc.x || r.Y != tc.y {
				t.Errorf("origin = (%d, %d), expected (%d, %d)", r.X, r.Y, tc.x, tc.y)
			}
			if r.Right() != tc.right || r.Bottom() != tc.b {
				t.Errorf("Right/Bottom = %d/%d, expected %d/%d", r.Right(), r.Bottom(), tc.right, tc.b)
			}
		})
	}
}
