package symbolclass

import "testing"

func TestSingleAndContains(t *testing.T) {
	c := Single(65)
	if !c.Contains(65) {
		t.Fatal("expected class to contain 65")
	}
	if c.Contains(66) {
		t.Fatal("expected class to not contain 66")
	}
}

func TestNewRangePanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for hi < lo")
		}
	}()
	NewRange(10, 5)
}

func TestCanonicalizeMergesAdjacentAndOverlapping(t *testing.T) {
	c := canonicalize([]Range{{0, 5}, {6, 10}, {20, 30}, {15, 22}})
	want := Class{{0, 10}, {15, 30}}
	if !Equal(c, want) {
		t.Fatalf("got %v, want %v", c, want)
	}
}

func TestLen(t *testing.T) {
	c := Class{{0, 9}, {20, 20}}
	if got := c.Len(); got != 11 {
		t.Fatalf("Len() = %d, want 11", got)
	}
}

func TestEmptyIsEmpty(t *testing.T) {
	if !Empty().IsEmpty() {
		t.Fatal("Empty() should be empty")
	}
	if Single(0).IsEmpty() {
		t.Fatal("Single(0) should not be empty")
	}
}

func TestStringFormat(t *testing.T) {
	c := Class{{65, 90}, {97, 97}}
	if got, want := c.String(), "[65-90,97]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
