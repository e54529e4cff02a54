package bitboard

import (
	"testing"

	"github.com/mvossen/c4solve/internal/geometry"
)

func col(c int) Bitmap {
	return geometry.BottomBit(c)
}

func TestConnected4Horizontal(t *testing.T) {
	var stones Bitmap
	for c := 0; c < 4; c++ {
		stones |= col(c)
	}
	if !Connected4(stones) {
		t.Fatal("expected horizontal four-in-a-row to be detected")
	}
	if Connected4(stones &^ col(0)) {
		t.Fatal("three stones should not be connected")
	}
}

func TestConnected4Vertical(t *testing.T) {
	var stones Bitmap
	for y := 0; y < 4; y++ {
		stones |= uint64(1) << uint(y)
	}
	if !Connected4(stones) {
		t.Fatal("expected vertical four-in-a-row to be detected")
	}
}

func TestConnected4DiagUp(t *testing.T) {
	var stones Bitmap
	for c := 0; c < 4; c++ {
		stones |= uint64(1) << uint(c*geometry.UsedHeight+c)
	}
	if !Connected4(stones) {
		t.Fatal("expected rising diagonal four-in-a-row to be detected")
	}
}

func TestConnected4DiagDown(t *testing.T) {
	var stones Bitmap
	for c := 0; c < 4; c++ {
		stones |= uint64(1) << uint(c*geometry.UsedHeight+(3-c))
	}
	if !Connected4(stones) {
		t.Fatal("expected falling diagonal four-in-a-row to be detected")
	}
}

func TestThreatsVerticalCompletesOnFourth(t *testing.T) {
	var stones Bitmap
	for y := 0; y < 3; y++ {
		stones |= uint64(1) << uint(y)
	}
	threats := Threats(stones, stones)
	want := uint64(1) << 3
	if threats&want == 0 {
		t.Fatalf("expected cell above a vertical three to be a threat, threats=%x", threats)
	}
}

func TestThreatsHorizontalBothSides(t *testing.T) {
	// Three consecutive stones in columns 1,2,3; both column 0 and column 4
	// should be reported as completing threats.
	var stones Bitmap
	for c := 1; c <= 3; c++ {
		stones |= col(c)
	}
	occupied := stones
	threats := Threats(stones, occupied)
	if threats&col(0) == 0 {
		t.Errorf("expected column 0 to be a threat, threats=%x", threats)
	}
	if threats&col(4) == 0 {
		t.Errorf("expected column 4 to be a threat, threats=%x", threats)
	}
}

func TestThreatsExcludesOccupiedCells(t *testing.T) {
	var stones Bitmap
	for c := 0; c < 4; c++ {
		stones |= col(c)
	}
	// stones already connects four; the cells themselves must not show up
	// as "threats" since Threats masks against occupied.
	threats := Threats(stones, stones)
	if threats&stones != 0 {
		t.Fatalf("threats overlap already-occupied cells: %x", threats)
	}
}

func TestPopCount(t *testing.T) {
	cases := []struct {
		in   Bitmap
		want int
	}{
		{0, 0},
		{1, 1},
		{0b1011, 3},
		{^uint64(0), 64},
	}
	for _, c := range cases {
		if got := PopCount(c.in); got != c.want {
			t.Errorf("PopCount(%#x) = %d, want %d", c.in, got, c.want)
		}
	}
}
