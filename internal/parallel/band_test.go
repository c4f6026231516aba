package parallel

import (
	"reflect"
	"testing"
)

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name       string
		y0, y1     int
		n, minRows int
		want       []Band
	}{
		{"empty", 5, 5, 4, 1, nil},
		{"inverted", 9, 3, 4, 1, nil},
		{"one worker", 0, 10, 1, 1, []Band{{0, 10}}},
		{"even split", 0, 8, 4, 1, []Band{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder goes first", 0, 10, 4, 1, []Band{{0, 3}, {3, 6}, {6, 8}, {8, 10}}},
		{"offset range", 20, 26, 3, 1, []Band{{20, 22}, {22, 24}, {24, 26}}},
		{"min rows caps bands", 0, 20, 8, 8, []Band{{0, 10}, {10, 20}}},
		{"short range one band", 3, 7, 8, 8, []Band{{3, 7}}},
		{"zero workers", 0, 4, 0, 1, []Band{{0, 4}}},
		{"more workers than rows", 0, 3, 8, 0, []Band{{0, 1}, {1, 2}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRows(tt.y0, tt.y1, tt.n, tt.minRows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitRows(%d, %d, %d, %d) = %v, want %v",
					tt.y0, tt.y1, tt.n, tt.minRows, got, tt.want)
			}
		})
	}
}

func TestSplitRows_CoversEveryRowOnce(t *testing.T) {
	for rows := 1; rows <= 50; rows++ {
		for n := 1; n <= 9; n++ {
			bands := SplitRows(100, 100+rows, n, 3)

			next := 100
			for _, b := range bands {
				if b.Y0 != next {
					t.Fatalf("rows=%d n=%d: band %v starts at %d, want %d", rows, n, b, b.Y0, next)
				}
				if b.Rows() <= 0 {
					t.Fatalf("rows=%d n=%d: empty band %v", rows, n, b)
				}
				next = b.Y1
			}
			if next != 100+rows {
				t.Fatalf("rows=%d n=%d: bands end at %d, want %d", rows, n, next, 100+rows)
			}
			if len(bands) > n {
				t.Fatalf("rows=%d n=%d: got %d bands", rows, n, len(bands))
			}
		}
	}
}
