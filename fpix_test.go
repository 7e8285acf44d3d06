package pixcore

import "testing"

func TestFPixGetSet(t *testing.T) {
	f, err := NewFPix(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Set(1, 1, 3.5); err != nil {
		t.Fatal(err)
	}
	got, err := f.Get(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3.5 {
		t.Errorf("got %v, want 3.5", got)
	}
}

func TestFPixOutOfBounds(t *testing.T) {
	f, _ := NewFPix(2, 2)
	if _, err := f.Get(5, 5); err == nil {
		t.Error("expected out-of-bounds error")
	}
}

func TestFPixCloneIndependent(t *testing.T) {
	f, _ := NewFPix(2, 2)
	f.Set(0, 0, 1)
	clone := f.Clone()
	clone.Set(0, 0, 99)
	orig, _ := f.Get(0, 0)
	if orig != 1 {
		t.Errorf("mutating clone affected original: got %v", orig)
	}
}
