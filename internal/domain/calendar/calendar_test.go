package calendar

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-02-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != "2026-02-09" {
		t.Fatalf("expected canonical form, got %q", d)
	}
	if d.Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %v", d.Weekday())
	}

	if _, err := ParseDay("09.02.2026"); err == nil {
		t.Fatal("expected error for non-ISO input")
	}
	if _, err := ParseDay("2026-02-30"); err == nil {
		t.Fatal("expected error for impossible date")
	}
}

func TestDayArithmetic(t *testing.T) {
	d := Day("2026-02-27")
	if got := d.AddDays(2); got != "2026-03-01" {
		t.Fatalf("expected month rollover to 2026-03-01, got %q", got)
	}
	if got := d.Next(); got != "2026-02-28" {
		t.Fatalf("expected 2026-02-28, got %q", got)
	}
	if nights := Day("2026-02-09").NightsUntil("2026-02-12"); nights != 3 {
		t.Fatalf("expected 3 nights, got %d", nights)
	}
	if nights := Day("2026-02-12").NightsUntil("2026-02-09"); nights != -3 {
		t.Fatalf("expected -3 nights, got %d", nights)
	}
}

func TestInIntervalHalfOpen(t *testing.T) {
	start, end := Day("2026-02-09"), Day("2026-02-12")
	if !InInterval("2026-02-09", start, end) {
		t.Fatal("check-in day must be inside the stay")
	}
	if !InInterval("2026-02-11", start, end) {
		t.Fatal("middle night must be inside the stay")
	}
	if InInterval("2026-02-12", start, end) {
		t.Fatal("checkout day must be outside the stay")
	}
}

func TestRangeDaysInclusive(t *testing.T) {
	rng := Range{From: "2026-02-09", To: "2026-02-11"}
	days := rng.Days()
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0] != "2026-02-09" || days[2] != "2026-02-11" {
		t.Fatalf("unexpected bounds: %v", days)
	}

	single := Range{From: "2026-02-09", To: "2026-02-09"}
	if got := single.Days(); len(got) != 1 {
		t.Fatalf("single-day range must yield one day, got %v", got)
	}
}

func TestRangeValidate(t *testing.T) {
	if err := (Range{From: "2026-02-12", To: "2026-02-09"}).Validate(); err == nil {
		t.Fatal("inverted range must fail validation")
	}
	if err := (Range{}).Validate(); err == nil {
		t.Fatal("empty range must fail validation")
	}
	if err := (Range{From: "2026-02-09", To: "2026-02-09"}).Validate(); err != nil {
		t.Fatalf("single-day range must validate, got %v", err)
	}
}

func TestRangeOverlaps(t *testing.T) {
	rng := Range{From: "2026-02-09", To: "2026-02-12"}

	// Checkout on the window start frees the room before the window.
	if rng.Overlaps("2026-02-05", "2026-02-09") {
		t.Fatal("stay ending on window start must not overlap")
	}
	if !rng.Overlaps("2026-02-05", "2026-02-10") {
		t.Fatal("stay reaching into the window must overlap")
	}
	if !rng.Overlaps("2026-02-12", "2026-02-15") {
		t.Fatal("stay starting on the inclusive window end must overlap")
	}
	if rng.Overlaps("2026-02-13", "2026-02-15") {
		t.Fatal("stay after the window must not overlap")
	}
}
