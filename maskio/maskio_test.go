package maskio

import "testing"

func TestFlattenUnflattenRoundTrip(t *testing.T) {
	rows := [][]byte{
		{1, 1, 1},
		{2, 2, 2},
		{1, 1, 1},
	}

	buf, h, w, err := Flatten(rows)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	if h != 3 || w != 3 {
		t.Fatalf("Flatten shape = (%d, %d), want (3, 3)", h, w)
	}

	got, err := Unflatten(buf, h, w)
	if err != nil {
		t.Fatalf("Unflatten failed: %v", err)
	}
	for i := range rows {
		for j := range rows[i] {
			if got[i][j] != rows[i][j] {
				t.Fatalf("row %d col %d = %d, want %d", i, j, got[i][j], rows[i][j])
			}
		}
	}
}

func TestFlattenRejectsRaggedRows(t *testing.T) {
	rows := [][]byte{{1, 2}, {1}}
	if _, _, _, err := Flatten(rows); err == nil {
		t.Fatal("expected error for ragged rows")
	}
}

func TestFlattenRejectsEmpty(t *testing.T) {
	if _, _, _, err := Flatten(nil); err == nil {
		t.Fatal("expected error for no rows")
	}
}

func TestUnflattenRejectsWrongSize(t *testing.T) {
	if _, err := Unflatten([]byte{1, 2, 3}, 2, 2); err == nil {
		t.Fatal("expected error for mismatched buffer size")
	}
}
