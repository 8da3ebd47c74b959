package cos

import "testing"

func TestDivvyNoRemainder(t *testing.T) {
	got := Divvy(25, 5)
	want := []int{5, 5, 5, 5, 5}
	assertIntSlicesEqual(t, want, got)
}

func TestDivvyWithRemainder(t *testing.T) {
	got := Divvy(29, 5)
	want := []int{6, 6, 6, 6, 5}
	assertIntSlicesEqual(t, want, got)
}

func TestDivvySumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{
		{100, 7}, {1, 1}, {0, 3}, {17, 4}, {4, 17},
	} {
		parts := Divvy(tc.total, tc.n)
		if len(parts) != tc.n {
			t.Fatalf("Divvy(%d,%d): got %d parts, want %d", tc.total, tc.n, len(parts), tc.n)
		}
		sum := 0
		for _, p := range parts {
			sum += p
		}
		if sum != tc.total {
			t.Fatalf("Divvy(%d,%d): parts sum to %d, want %d", tc.total, tc.n, sum, tc.total)
		}
	}
}

func assertIntSlicesEqual(t *testing.T, want, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("length mismatch: want %v got %v", want, got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("index %d: want %v got %v", i, want, got)
		}
	}
}
