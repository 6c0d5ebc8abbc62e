// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"errors"
	"testing"

	"github.com/danielhkuo/comparely/models"
	"github.com/danielhkuo/comparely/store"
	"github.com/danielhkuo/comparely/testutil"
	"github.com/danielhkuo/comparely/voting"
)

func TestComputeRanking(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := store.NewSessions(conn)
	comparisons := store.NewComparisons(conn)
	engine := voting.NewEngine(conn)

	sess, err := sessions.Create("Test", []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, _ := comparisons.ListBySession(sess.ID)
	byPair := make(map[string]models.Comparison)
	for _, cmp := range all {
		byPair[cmp.ItemA+cmp.ItemB] = cmp
	}

	// B sweeps, A takes its remaining matchup, C wins nothing.
	for _, v := range []struct{ pair, winner string }{
		{"AB", "B"}, {"AC", "A"}, {"BC", "B"},
	} {
		if err := engine.SubmitVote(byPair[v.pair].ID, v.winner); err != nil {
			t.Fatalf("SubmitVote failed: %v", err)
		}
	}

	results, err := Compute(conn, sess.ID)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	want := []models.ItemResult{
		{Rank: 1, Item: "B", Wins: 2, Appearances: 2, WinRate: 100},
		{Rank: 2, Item: "A", Wins: 1, Appearances: 2, WinRate: 50},
		{Rank: 3, Item: "C", Wins: 0, Appearances: 2, WinRate: 0},
	}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("rank %d: got %+v, want %+v", i+1, results[i], want[i])
		}
	}
}

func TestComputeTieKeepsOriginalOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := store.NewSessions(conn)
	comparisons := store.NewComparisons(conn)
	engine := voting.NewEngine(conn)

	// A cycle: every item wins exactly once, so the original item order
	// decides the ranking.
	sess, _ := sessions.Create("Cycle", []string{"A", "B", "C"})
	all, _ := comparisons.ListBySession(sess.ID)
	byPair := make(map[string]models.Comparison)
	for _, cmp := range all {
		byPair[cmp.ItemA+cmp.ItemB] = cmp
	}
	for _, v := range []struct{ pair, winner string }{
		{"AB", "A"}, {"AC", "C"}, {"BC", "B"},
	} {
		if err := engine.SubmitVote(byPair[v.pair].ID, v.winner); err != nil {
			t.Fatalf("SubmitVote failed: %v", err)
		}
	}

	results, err := Compute(conn, sess.ID)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	wantOrder := []string{"A", "B", "C"}
	for i, r := range results {
		if r.Item != wantOrder[i] {
			t.Errorf("position %d: got %q, want %q", i, r.Item, wantOrder[i])
		}
		if r.Wins != 1 || r.WinRate != 50 {
			t.Errorf("item %q: got wins=%d rate=%d, want 1/50", r.Item, r.Wins, r.WinRate)
		}
	}
}

func TestComputeUnansweredSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := store.NewSessions(conn)

	sess, _ := sessions.Create("Fresh", []string{"A", "B", "C", "D"})

	results, err := Compute(conn, sess.ID)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	totalAppearances := 0
	for _, r := range results {
		if r.Wins != 0 || r.WinRate != 0 {
			t.Errorf("item %q: expected zero wins before any votes, got %+v", r.Item, r)
		}
		if r.Appearances != 3 {
			t.Errorf("item %q: expected 3 appearances, got %d", r.Item, r.Appearances)
		}
		totalAppearances += r.Appearances
	}
	// Each of the 6 comparisons contributes two appearances.
	if totalAppearances != 12 {
		t.Errorf("expected 12 total appearances, got %d", totalAppearances)
	}
}

func TestComputeUnknownSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if _, err := Compute(conn, "missing"); !errors.Is(err, store.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := store.NewSessions(conn)
	comparisons := store.NewComparisons(conn)
	engine := voting.NewEngine(conn)

	sess, _ := sessions.Create("Report", []string{"A", "B", "C"})
	all, _ := comparisons.ListBySession(sess.ID)
	if err := engine.SubmitVote(all[0].ID, all[0].ItemA); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}

	report, err := Results(conn, sessions, sess.ID)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if report.Session.ID != sess.ID {
		t.Errorf("wrong session in report: %q", report.Session.ID)
	}
	if (report.Progress != models.Progress{Completed: 1, Total: 3, Percentage: 33}) {
		t.Errorf("unexpected progress: %+v", report.Progress)
	}
	if len(report.Rankings) != 3 || report.Rankings[0].Item != "A" {
		t.Errorf("unexpected rankings: %+v", report.Rankings)
	}

	if _, err := Results(conn, sessions, "missing"); !errors.Is(err, store.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
