package board

import "testing"

func TestReverseRows(t *testing.T) {
	expected := Board{
		{0, 2, 0, 2},
		{2, 4, 4, 0},
		{2, 2, 2, 2},
		{4, 2, 4, 2},
	}

	if got := ReverseRows(sampleBoard()); !Equal(got, expected) {
		t.Errorf("ReverseRows: got\n%v\nwant\n%v", got, expected)
	}
}

func TestTransposeIdentity(t *testing.T) {
	identity := Board{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}

	if got := Transpose(identity); !Equal(got, identity) {
		t.Errorf("Transpose(identity) = %v", got)
	}
}

func TestTransposeRectangular(t *testing.T) {
	b := Board{
		{1, 0, 2, 5, 1, 1},
		{0, 1, 3, 6, 2, 7},
		{3, 8, 5, 4, 1, 9},
		{0, 1, 0, 3, 0, 7},
	}
	expected := Board{
		{1, 0, 3, 0},
		{0, 1, 8, 1},
		{2, 3, 5, 0},
		{5, 6, 4, 3},
		{1, 2, 1, 0},
		{1, 7, 9, 7},
	}

	got := Transpose(b)
	if !Equal(got, expected) {
		t.Errorf("Transpose: got\n%v\nwant\n%v", got, expected)
	}
	if back := Transpose(got); !Equal(back, b) {
		t.Errorf("Transpose(Transpose(b)) = %v, want %v", back, b)
	}
}

func TestTransposeEmpty(t *testing.T) {
	if got := Transpose(Board{}); len(got) != 0 {
		t.Errorf("Transpose(empty) = %v, want empty", got)
	}
}

func TestTransposeShortRowReadsAsEmpty(t *testing.T) {
	b := Board{
		{2, 4, 8},
		{16},
	}
	expected := Board{
		{2, 16},
		{4, 0},
		{8, 0},
	}

	if got := Transpose(b); !Equal(got, expected) {
		t.Errorf("Transpose(ragged) = %v, want %v", got, expected)
	}
}

func TestTransposeLongRowKeepsTiles(t *testing.T) {
	b := Board{
		{2, 0},
		{2, 4, 8},
	}
	expected := Board{
		{2, 2},
		{0, 4},
		{0, 8},
	}

	if got := Transpose(b); !Equal(got, expected) {
		t.Errorf("Transpose(ragged) = %v, want %v", got, expected)
	}

	up := Apply(b, Up)
	if got, want := Sum(up.Board), Sum(b); got != want {
		t.Errorf("Apply(%v, up): sum after = %d, want %d", b, got, want)
	}
	if up.Score != 4 {
		t.Errorf("Apply(%v, up): score = %d, want 4", b, up.Score)
	}
}
