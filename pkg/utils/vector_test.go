package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestVector2Arithmetic(t *testing.T) {
	a := Vector2{X: 3, Y: 4}
	b := Vector2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vector2{X: 4, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vector2{X: 2, Y: 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vector2{X: 6, Y: 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestVector2Normalized(t *testing.T) {
	tests := []struct {
		name   string
		in     Vector2
		want   Vector2
		wantOK bool
	}{
		{"水平向右", Vector2{X: 100, Y: 0}, Vector2{X: 1, Y: 0}, true},
		{"3-4-5", Vector2{X: 3, Y: 4}, Vector2{X: 0.6, Y: 0.8}, true},
		{"向下", Vector2{X: 0, Y: -7}, Vector2{X: 0, Y: -1}, true},
		{"零向量", Vector2{}, Vector2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Normalized()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got.X-tt.want.X) > epsilon || math.Abs(got.Y-tt.want.Y) > epsilon {
				t.Errorf("Normalized() = %v, want %v", got, tt.want)
			}
			if ok && math.Abs(got.Length()-1) > epsilon {
				t.Errorf("length = %v, want 1", got.Length())
			}
		})
	}
}

func TestVector2Lerp(t *testing.T) {
	from := Vector2{X: 0, Y: 10}
	to := Vector2{X: 100, Y: 30}

	if got := from.Lerp(to, 0); got != from {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := from.Lerp(to, 1); got != to {
		t.Errorf("Lerp(1) = %v", got)
	}
	if got := from.Lerp(to, 0.5); got != (Vector2{X: 50, Y: 20}) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
}
