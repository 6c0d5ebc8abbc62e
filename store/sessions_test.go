// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danielhkuo/comparely/testutil"
)

func TestCreateSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := NewSessions(conn)
	comparisons := NewComparisons(conn)

	sess, err := sessions.Create("Test", []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if sess.ID == "" {
		t.Error("expected a non-empty session id")
	}
	if sess.Slug != "test" {
		t.Errorf("expected slug 'test', got %q", sess.Slug)
	}
	if sess.IsCompleted {
		t.Error("new session must not be completed")
	}
	if !reflect.DeepEqual(sess.Items, []string{"A", "B", "C"}) {
		t.Errorf("unexpected items: %v", sess.Items)
	}

	got, err := comparisons.ListBySession(sess.ID)
	if err != nil {
		t.Fatalf("ListBySession failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 comparisons, got %d", len(got))
	}

	wantPairs := [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}}
	for i, cmp := range got {
		if cmp.ItemA != wantPairs[i][0] || cmp.ItemB != wantPairs[i][1] {
			t.Errorf("comparison %d: got (%s,%s), want (%s,%s)",
				i, cmp.ItemA, cmp.ItemB, wantPairs[i][0], wantPairs[i][1])
		}
		if cmp.Winner != nil {
			t.Errorf("comparison %d: expected nil winner, got %q", i, *cmp.Winner)
		}
		if cmp.Position != i {
			t.Errorf("comparison %d: expected position %d, got %d", i, i, cmp.Position)
		}
		if cmp.SessionID != sess.ID {
			t.Errorf("comparison %d: wrong session id %q", i, cmp.SessionID)
		}
	}
}

func TestCreateSessionSlugCollision(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := NewSessions(conn)

	first, err := sessions.Create("Demo", []string{"A", "B"})
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := sessions.Create("Demo", []string{"C", "D"})
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	third, err := sessions.Create("Demo", []string{"E", "F"})
	if err != nil {
		t.Fatalf("third Create failed: %v", err)
	}

	if first.Slug != "demo" {
		t.Errorf("expected slug 'demo', got %q", first.Slug)
	}
	if second.Slug != "demo-1" {
		t.Errorf("expected slug 'demo-1', got %q", second.Slug)
	}
	if third.Slug != "demo-2" {
		t.Errorf("expected slug 'demo-2', got %q", third.Slug)
	}
}

func TestGetSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := NewSessions(conn)

	created, err := sessions.Create("Lunch spots", []string{"Pizza", "Sushi"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	byID, err := sessions.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if byID.Title != "Lunch spots" || byID.Slug != "lunch-spots" {
		t.Errorf("unexpected session: %+v", byID)
	}

	bySlug, err := sessions.GetBySlug("lunch-spots")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if bySlug.ID != created.ID {
		t.Errorf("GetBySlug returned wrong session: %q", bySlug.ID)
	}

	if _, err := sessions.GetByID("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := sessions.GetBySlug("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestListSessionsOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := NewSessions(conn)

	a, _ := sessions.Create("First", []string{"A", "B"})
	b, _ := sessions.Create("Second", []string{"A", "B"})
	c, _ := sessions.Create("Third", []string{"A", "B"})

	// Touching the oldest session moves it to the front.
	if err := sessions.Update(a.ID, UpdateParams{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	list, err := sessions.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(list))
	}

	wantOrder := []string{a.ID, c.ID, b.ID}
	for i, sess := range list {
		if sess.ID != wantOrder[i] {
			t.Errorf("position %d: got %q, want %q", i, sess.ID, wantOrder[i])
		}
	}
}

func TestUpdateTitleReallocatesSlug(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := NewSessions(conn)

	demo, _ := sessions.Create("Demo", []string{"A", "B"})
	other, _ := sessions.Create("Other", []string{"A", "B"})

	// Renaming into a colliding title takes the next free suffix.
	title := "Demo"
	if err := sessions.Update(other.ID, UpdateParams{Title: &title}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	updated, _ := sessions.GetByID(other.ID)
	if updated.Slug != "demo-1" {
		t.Errorf("expected slug 'demo-1', got %q", updated.Slug)
	}

	// Re-saving an unchanged title keeps the existing slug (excludeID path).
	if err := sessions.Update(demo.ID, UpdateParams{Title: &title}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	kept, _ := sessions.GetByID(demo.ID)
	if kept.Slug != "demo" {
		t.Errorf("expected slug 'demo' to be kept, got %q", kept.Slug)
	}
}

func TestUpdateItemsRegeneratesComparisons(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := NewSessions(conn)
	comparisons := NewComparisons(conn)

	sess, err := sessions.Create("Test", []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Answer everything and mark the session completed, then edit the items.
	existing, _ := comparisons.ListBySession(sess.ID)
	for _, cmp := range existing {
		if err := comparisons.SetWinner(cmp.ID, cmp.ItemA); err != nil {
			t.Fatalf("SetWinner failed: %v", err)
		}
	}
	if _, err := conn.Exec(`UPDATE session SET is_completed = $1 WHERE id = $2`, true, sess.ID); err != nil {
		t.Fatalf("Failed to mark session completed: %v", err)
	}

	if err := sessions.Update(sess.ID, UpdateParams{Items: []string{"A", "B"}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, _ := sessions.GetByID(sess.ID)
	if updated.IsCompleted {
		t.Error("item update must force the session back to not-completed")
	}
	if !reflect.DeepEqual(updated.Items, []string{"A", "B"}) {
		t.Errorf("unexpected items: %v", updated.Items)
	}

	regenerated, _ := comparisons.ListBySession(sess.ID)
	if len(regenerated) != 1 {
		t.Fatalf("expected 1 comparison after update, got %d", len(regenerated))
	}
	cmp := regenerated[0]
	if cmp.ItemA != "A" || cmp.ItemB != "B" || cmp.Winner != nil {
		t.Errorf("unexpected regenerated comparison: %+v", cmp)
	}
}

func TestUpdateNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := NewSessions(conn)

	title := "Renamed"
	err := sessions.Update("missing", UpdateParams{Title: &title})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteSessionCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := NewSessions(conn)
	comparisons := NewComparisons(conn)

	sess, _ := sessions.Create("Test", []string{"A", "B", "C"})

	if err := sessions.Delete(sess.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := sessions.GetByID(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
	remaining, err := comparisons.ListBySession(sess.ID)
	if err != nil {
		t.Fatalf("ListBySession failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected 0 comparisons after delete, got %d", len(remaining))
	}

	if err := sessions.Delete(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for second delete, got %v", err)
	}
}

func TestDuplicateSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := NewSessions(conn)
	comparisons := NewComparisons(conn)

	src, _ := sessions.Create("Movie night", []string{"A", "B", "C"})
	srcComparisons, _ := comparisons.ListBySession(src.ID)
	if err := comparisons.SetWinner(srcComparisons[0].ID, "A"); err != nil {
		t.Fatalf("SetWinner failed: %v", err)
	}

	dup, err := sessions.Duplicate(src.ID)
	if err != nil {
		t.Fatalf("Duplicate failed: %v", err)
	}

	if dup.ID == src.ID {
		t.Error("duplicate must get its own id")
	}
	if dup.Title != "Movie night (Copy)" {
		t.Errorf("expected title 'Movie night (Copy)', got %q", dup.Title)
	}
	if dup.Slug == src.Slug {
		t.Errorf("duplicate must get its own slug, both are %q", dup.Slug)
	}
	if !reflect.DeepEqual(dup.Items, src.Items) {
		t.Errorf("duplicate items %v differ from source %v", dup.Items, src.Items)
	}

	dupComparisons, _ := comparisons.ListBySession(dup.ID)
	if len(dupComparisons) != 3 {
		t.Fatalf("expected 3 fresh comparisons, got %d", len(dupComparisons))
	}
	for _, cmp := range dupComparisons {
		if cmp.Winner != nil {
			t.Errorf("duplicate comparison %s should be unanswered, winner=%q", cmp.ID, *cmp.Winner)
		}
	}

	if _, err := sessions.Duplicate("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
