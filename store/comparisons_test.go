// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/comparely/testutil"
)

func TestPopulateAndList(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	comparisons := NewComparisons(conn)

	sessionID := testutil.CreateTestSession(t, conn, "Test", "test", []string{"A", "B", "C", "D"})

	if err := comparisons.Populate(sessionID, []string{"A", "B", "C", "D"}); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	got, err := comparisons.ListBySession(sessionID)
	if err != nil {
		t.Fatalf("ListBySession failed: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 comparisons for 4 items, got %d", len(got))
	}
	for i, cmp := range got {
		if cmp.Position != i {
			t.Errorf("comparison %d has position %d", i, cmp.Position)
		}
		if cmp.Winner != nil {
			t.Errorf("comparison %d should start unanswered", i)
		}
	}
}

func TestNextUnanswered(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	comparisons := NewComparisons(conn)

	sessionID := testutil.CreateTestSession(t, conn, "Test", "test", []string{"A", "B", "C"})
	if err := comparisons.Populate(sessionID, []string{"A", "B", "C"}); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	all, _ := comparisons.ListBySession(sessionID)

	for answered := 0; answered < len(all); answered++ {
		next, err := comparisons.Next(sessionID)
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if next == nil {
			t.Fatalf("expected an unanswered comparison with %d remaining", len(all)-answered)
		}
		if next.Winner != nil {
			t.Fatal("Next returned an answered comparison")
		}
		if err := comparisons.SetWinner(next.ID, next.ItemA); err != nil {
			t.Fatalf("SetWinner failed: %v", err)
		}
	}

	next, err := comparisons.Next(sessionID)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if next != nil {
		t.Errorf("expected nil when no unanswered comparisons remain, got %+v", next)
	}
}

func TestSetAndClearWinner(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	comparisons := NewComparisons(conn)

	sessionID := testutil.CreateTestSession(t, conn, "Test", "test", []string{"A", "B"})
	compID := testutil.AddTestComparison(t, conn, sessionID, 0, "A", "B", nil)

	if err := comparisons.SetWinner(compID, "B"); err != nil {
		t.Fatalf("SetWinner failed: %v", err)
	}
	cmp, err := comparisons.Get(compID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cmp.Winner == nil || *cmp.Winner != "B" {
		t.Errorf("expected winner 'B', got %v", cmp.Winner)
	}

	if err := comparisons.ClearWinner(compID); err != nil {
		t.Fatalf("ClearWinner failed: %v", err)
	}
	cmp, _ = comparisons.Get(compID)
	if cmp.Winner != nil {
		t.Errorf("expected nil winner after clear, got %q", *cmp.Winner)
	}

	if err := comparisons.SetWinner("missing", "A"); !errors.Is(err, ErrComparisonNotFound) {
		t.Errorf("expected ErrComparisonNotFound, got %v", err)
	}
	if err := comparisons.ClearWinner("missing"); !errors.Is(err, ErrComparisonNotFound) {
		t.Errorf("expected ErrComparisonNotFound, got %v", err)
	}
	if _, err := comparisons.Get("missing"); !errors.Is(err, ErrComparisonNotFound) {
		t.Errorf("expected ErrComparisonNotFound, got %v", err)
	}
}

func TestMostRecentlyAnswered(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	comparisons := NewComparisons(conn)

	sessionID := testutil.CreateTestSession(t, conn, "Test", "test", []string{"A", "B", "C"})
	ab := testutil.AddTestComparison(t, conn, sessionID, 0, "A", "B", testutil.StringPtr("A"))
	ac := testutil.AddTestComparison(t, conn, sessionID, 1, "A", "C", testutil.StringPtr("C"))
	bc := testutil.AddTestComparison(t, conn, sessionID, 2, "B", "C", nil)

	base := time.Now()
	testutil.TouchComparison(t, conn, ab, base.Add(1*time.Second))
	testutil.TouchComparison(t, conn, ac, base.Add(2*time.Second))

	latest, err := comparisons.MostRecentlyAnswered(sessionID)
	if err != nil {
		t.Fatalf("MostRecentlyAnswered failed: %v", err)
	}
	if latest == nil || latest.ID != ac {
		t.Fatalf("expected comparison %s, got %+v", ac, latest)
	}

	// The unanswered comparison never wins, no matter its timestamp.
	testutil.TouchComparison(t, conn, bc, base.Add(3*time.Second))
	latest, _ = comparisons.MostRecentlyAnswered(sessionID)
	if latest == nil || latest.ID != ac {
		t.Errorf("unanswered comparison must be ignored, got %+v", latest)
	}

	// Equal timestamps break by highest position.
	testutil.TouchComparison(t, conn, ab, base.Add(2*time.Second))
	latest, _ = comparisons.MostRecentlyAnswered(sessionID)
	if latest == nil || latest.ID != ac {
		t.Errorf("expected position tie-break to pick %s, got %+v", ac, latest)
	}
}

func TestMostRecentlyAnsweredEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	comparisons := NewComparisons(conn)

	sessionID := testutil.CreateTestSession(t, conn, "Test", "test", []string{"A", "B"})
	testutil.AddTestComparison(t, conn, sessionID, 0, "A", "B", nil)

	latest, err := comparisons.MostRecentlyAnswered(sessionID)
	if err != nil {
		t.Fatalf("MostRecentlyAnswered failed: %v", err)
	}
	if latest != nil {
		t.Errorf("expected nil with no answered comparisons, got %+v", latest)
	}
}

func TestCountUnanswered(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	comparisons := NewComparisons(conn)

	sessionID := testutil.CreateTestSession(t, conn, "Test", "test", []string{"A", "B", "C"})
	if err := comparisons.Populate(sessionID, []string{"A", "B", "C"}); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	count, err := comparisons.CountUnanswered(sessionID)
	if err != nil {
		t.Fatalf("CountUnanswered failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 unanswered, got %d", count)
	}

	all, _ := comparisons.ListBySession(sessionID)
	if err := comparisons.SetWinner(all[0].ID, all[0].ItemB); err != nil {
		t.Fatalf("SetWinner failed: %v", err)
	}

	count, _ = comparisons.CountUnanswered(sessionID)
	if count != 2 {
		t.Errorf("expected 2 unanswered, got %d", count)
	}

	count, _ = comparisons.CountUnanswered("missing")
	if count != 0 {
		t.Errorf("expected 0 for unknown session, got %d", count)
	}
}
