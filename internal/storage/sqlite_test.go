package storage

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(Round{SessionID: "local", Destroyed: 4, Beached: 6, Health: 30, Ticks: 180, CrabAlive: true})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRound() id = %q, expected a UUID: %v", id, err)
	}

	got, err := store.RoundByID(id)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if got.Destroyed != 4 || got.Beached != 6 || got.Health != 30 || got.Ticks != 180 || !got.CrabAlive {
		t.Errorf("RoundByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	want := uuid.NewString()
	id, err := store.SaveRound(Round{ID: want, SessionID: "s"})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if id != want {
		t.Errorf("SaveRound() = %q, expected %q", id, want)
	}

	if _, err := store.SaveRound(Round{ID: want, SessionID: "s"}); err == nil {
		t.Error("SaveRound() with duplicate ID should fail")
	}
}

func TestRoundByIDNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RoundByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RoundByID() error = %v, expected ErrNotFound", err)
	}
}

func TestTopRoundsOrder(t *testing.T) {
	store := openTestStore(t)

	rounds := []Round{
		{Player: "a", Destroyed: 3, Health: 50, Beached: 7},
		{Player: "b", Destroyed: 8, Health: 10, Beached: 2},
		{Player: "c", Destroyed: 8, Health: 40, Beached: 2},
		{Player: "d", Destroyed: 0, Health: 0, Beached: 10},
		{Player: "e", Destroyed: 3, Health: 50, Beached: 5},
	}
	for _, r := range rounds {
		r.SessionID = "s"
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	top, err := store.TopRounds(4)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	want := []string{"c", "b", "e", "a"}
	if len(top) != len(want) {
		t.Fatalf("TopRounds() returned %d rounds, expected %d", len(top), len(want))
	}
	for i, p := range want {
		if top[i].Player != p {
			t.Errorf("TopRounds()[%d].Player = %q, expected %q", i, top[i].Player, p)
		}
	}
}

func TestSessionRounds(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.SaveRound(Round{SessionID: "one", Destroyed: i}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	if _, err := store.SaveRound(Round{SessionID: "two", Destroyed: 9}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	rounds, err := store.SessionRounds("one", 10)
	if err != nil {
		t.Fatalf("SessionRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("SessionRounds() returned %d rounds, expected 3", len(rounds))
	}
	// Most recent first
	if rounds[0].Destroyed != 2 {
		t.Errorf("SessionRounds()[0].Destroyed = %d, expected 2", rounds[0].Destroyed)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty ledger = %+v", empty)
	}

	store.SaveRound(Round{SessionID: "s", Destroyed: 2, Beached: 8, CrabAlive: true})
	store.SaveRound(Round{SessionID: "s", Destroyed: 6, Beached: 4, CrabAlive: false})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 {
		t.Errorf("Rounds = %d, expected 2", stats.Rounds)
	}
	if stats.BestDestroyed != 6 {
		t.Errorf("BestDestroyed = %d, expected 6", stats.BestDestroyed)
	}
	if stats.AvgDestroyed != 4 {
		t.Errorf("AvgDestroyed = %v, expected 4", stats.AvgDestroyed)
	}
	if stats.TotalBeached != 12 || stats.TotalDestroyed != 8 {
		t.Errorf("TotalBeached=%d TotalDestroyed=%d, expected 12 and 8", stats.TotalBeached, stats.TotalDestroyed)
	}
	if stats.CrabsLost != 1 {
		t.Errorf("CrabsLost = %d, expected 1", stats.CrabsLost)
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(Round{SessionID: "s", Destroyed: 1})
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	top, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("TopRounds() after Clear returned %d rounds", len(top))
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveRound(Round{SessionID: "s", Destroyed: 1})

	top, err := b.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("second ledger sees %d rounds from the first", len(top))
	}
}
