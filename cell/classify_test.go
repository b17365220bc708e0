package cell

import "testing"

var (
	green = RGB{0, 255, 0}
	red   = RGB{255, 0, 0}
	gray  = RGB{128, 128, 128}
)

func solidMatrix(w, h int, color RGB) Matrix {
	m := make(Matrix, h)
	for y := range m {
		m[y] = make([]RGB, w)
		for x := range m[y] {
			m[y][x] = color
		}
	}
	return m
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		m    Matrix
		want State
	}{
		{"all passable", solidMatrix(4, 4, green), Passable},
		{"all blocked", solidMatrix(4, 4, red), Blocked},
		{"neither color present", solidMatrix(4, 4, gray), Mixed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.m, 0, 0, 4, 4, green, red); got != tc.want {
				t.Errorf("Classify() = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestClassify_Mixed(t *testing.T) {
	m := solidMatrix(4, 4, green)
	m[2][2] = red

	if got := Classify(m, 0, 0, 4, 4, green, red); got != Mixed {
		t.Errorf("Classify() = %v; want Mixed", got)
	}
}

func TestClassify_SubRectangle(t *testing.T) {
	m := solidMatrix(10, 10, green)
	for y := 5; y < 10; y++ {
		for x := 0; x < 10; x++ {
			m[y][x] = red
		}
	}

	if got := Classify(m, 0, 0, 10, 5, green, red); got != Passable {
		t.Errorf("top half: Classify() = %v; want Passable", got)
	}
	if got := Classify(m, 0, 5, 10, 5, green, red); got != Blocked {
		t.Errorf("bottom half: Classify() = %v; want Blocked", got)
	}
	if got := Classify(m, 0, 0, 10, 10, green, red); got != Mixed {
		t.Errorf("whole: Classify() = %v; want Mixed", got)
	}
}

func TestNew(t *testing.T) {
	m := solidMatrix(4, 4, green)
	c := New(m, 1, 1, 2, 2, green, red)
	if c.X != 1 || c.Y != 1 || c.W != 2 || c.H != 2 {
		t.Errorf("New() box = %+v; want x=1,y=1,w=2,h=2", c)
	}
	if c.State != Passable {
		t.Errorf("New() state = %v; want Passable", c.State)
	}
}
