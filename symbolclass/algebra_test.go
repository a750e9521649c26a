package symbolclass

import "testing"

func TestUnion(t *testing.T) {
	a := NewRange(0, 10)
	b := NewRange(5, 20)
	got := Union(a, b)
	want := Class{{0, 20}}
	if !Equal(got, want) {
		t.Fatalf("Union = %v, want %v", got, want)
	}
}

func TestIntersection(t *testing.T) {
	a := Class{{0, 10}, {20, 30}}
	b := Class{{5, 25}}
	got := Intersection(a, b)
	want := Class{{5, 10}, {20, 25}}
	if !Equal(got, want) {
		t.Fatalf("Intersection = %v, want %v", got, want)
	}
}

func TestDifference(t *testing.T) {
	a := NewRange(0, 20)
	b := NewRange(5, 10)
	got := Difference(a, b)
	want := Class{{0, 4}, {11, 20}}
	if !Equal(got, want) {
		t.Fatalf("Difference = %v, want %v", got, want)
	}
}

func TestDifferenceDisjoint(t *testing.T) {
	a := NewRange(0, 5)
	b := NewRange(10, 20)
	got := Difference(a, b)
	if !Equal(got, a) {
		t.Fatalf("Difference of disjoint classes should return a unchanged, got %v", got)
	}
}

func TestSymmetricDifference(t *testing.T) {
	a := NewRange(0, 10)
	b := NewRange(5, 15)
	got := SymmetricDifference(a, b)
	want := Class{{0, 4}, {11, 15}}
	if !Equal(got, want) {
		t.Fatalf("SymmetricDifference = %v, want %v", got, want)
	}
}

func TestComplement(t *testing.T) {
	universe := NewRange(0, 100)
	a := Class{{10, 20}}
	got := Complement(a, universe)
	want := Class{{0, 9}, {21, 100}}
	if !Equal(got, want) {
		t.Fatalf("Complement = %v, want %v", got, want)
	}
}

func TestUnionAll(t *testing.T) {
	got := UnionAll(Single(1), Single(3), Single(2))
	want := Class{{1, 3}}
	if !Equal(got, want) {
		t.Fatalf("UnionAll = %v, want %v", got, want)
	}
}
