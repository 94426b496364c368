package life

import "testing"

func collectLine(x0, y0, x1, y1 int) [][2]int {
	var pts [][2]int
	bresenham(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, [2]int{x, y})
	})
	return pts
}

func TestBresenhamSinglePoint(t *testing.T) {
	pts := collectLine(4, 7, 4, 7)
	if len(pts) != 1 || pts[0] != [2]int{4, 7} {
		t.Fatalf("degenerate segment visited %v, expected just (4,7)", pts)
	}
}

func TestBresenhamAxisAligned(t *testing.T) {
	pts := collectLine(0, 0, 5, 0)
	if len(pts) != 6 {
		t.Fatalf("horizontal segment visited %d points, expected 6", len(pts))
	}
	for i, p := range pts {
		if p != [2]int{i, 0} {
			t.Fatalf("point %d = %v, expected (%d,0)", i, p, i)
		}
	}

	pts = collectLine(3, 8, 3, 2)
	if len(pts) != 7 || pts[0] != [2]int{3, 8} || pts[6] != [2]int{3, 2} {
		t.Fatalf("vertical segment visited %v", pts)
	}
}

func TestBresenhamEndpointsIncluded(t *testing.T) {
	cases := [][4]int{
		{0, 0, 9, 3},
		{9, 3, 0, 0},
		{-2, 5, 4, -7},
		{1, 1, 8, 8},
	}
	for _, c := range cases {
		pts := collectLine(c[0], c[1], c[2], c[3])
		if pts[0] != [2]int{c[0], c[1]} {
			t.Errorf("segment %v starts at %v", c, pts[0])
		}
		if last := pts[len(pts)-1]; last != [2]int{c[2], c[3]} {
			t.Errorf("segment %v ends at %v", c, last)
		}
	}
}

func TestBresenhamContinuity(t *testing.T) {
	// Consecutive points must stay 8-connected: a drag stroke may not gap.
	cases := [][4]int{
		{0, 0, 17, 5},
		{0, 0, 5, 17},
		{10, 2, -5, 9},
		{3, 3, -12, -4},
	}
	for _, c := range cases {
		pts := collectLine(c[0], c[1], c[2], c[3])
		for i := 1; i < len(pts); i++ {
			dx := abs(pts[i][0] - pts[i-1][0])
			dy := abs(pts[i][1] - pts[i-1][1])
			if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
				t.Fatalf("segment %v has a discontinuity between %v and %v", c, pts[i-1], pts[i])
			}
		}
	}
}
