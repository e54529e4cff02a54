package geometry

import "testing"

func TestMoveOrder(t *testing.T) {
	want := [Width]int{3, 4, 2, 5, 1, 6, 0}
	got := MoveOrder()
	if got != want {
		t.Fatalf("MoveOrder() = %v, want %v", got, want)
	}
}

func TestPackedEntryFitsInWord(t *testing.T) {
	if G.KeyBits+G.BestBits+G.ScoreBits > 64 {
		t.Fatalf("packed entry needs %d bits, more than 64", G.KeyBits+G.BestBits+G.ScoreBits)
	}
}

func TestMasksDisjointFromBoard(t *testing.T) {
	if G.AboveBits&G.BoardMask != 0 {
		t.Fatalf("AboveBits overlaps BoardMask")
	}
	if G.BottomBits&^G.BoardMask != 0 {
		t.Fatalf("BottomBits leaks outside BoardMask")
	}
	if G.TopBits&^G.BoardMask != 0 {
		t.Fatalf("TopBits leaks outside BoardMask")
	}
}

func TestColumnMask(t *testing.T) {
	for col := 0; col < Width; col++ {
		m := ColumnMask(col)
		if BottomBit(col)&m == 0 {
			t.Errorf("column %d: bottom bit not in column mask", col)
		}
		if TopBit(col)&m == 0 {
			t.Errorf("column %d: top bit not in column mask", col)
		}
		if m&G.AboveBits != 0 {
			t.Errorf("column %d: column mask overlaps guard row", col)
		}
	}
}
