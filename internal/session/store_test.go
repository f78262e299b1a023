package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

func TestUpdateCreatesSessionOnFirstUse(t *testing.T) {
	store := NewStore(time.Minute)
	store.Update("u1", func(sess *model.Session) {
		sess.History = append(sess.History, model.ChatTurn{Role: model.RoleUser, Content: "hi"})
	})

	sess := store.Snapshot("u1")
	if len(sess.History) != 1 || sess.History[0].Content != "hi" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestUpdateTruncatesHistory(t *testing.T) {
	store := NewStore(time.Minute)
	store.Update("u1", func(sess *model.Session) {
		for i := 0; i < 25; i++ {
			sess.History = append(sess.History, model.ChatTurn{Role: model.RoleUser, Content: fmt.Sprintf("turn %d", i)})
		}
	})

	sess := store.Snapshot("u1")
	if len(sess.History) != historyLimit {
		t.Fatalf("expected history capped at %d, got %d", historyLimit, len(sess.History))
	}
	if sess.History[0].Content != "turn 15" {
		t.Errorf("expected oldest turns dropped, got %q", sess.History[0].Content)
	}
	if sess.History[historyLimit-1].Content != "turn 24" {
		t.Errorf("expected newest turn retained, got %q", sess.History[historyLimit-1].Content)
	}
}

func TestResetClearsSession(t *testing.T) {
	store := NewStore(time.Minute)
	store.Update("u1", func(sess *model.Session) {
		sess.History = append(sess.History, model.ChatTurn{Role: model.RoleUser, Content: "hi"})
		sess.LastBooks = append(sess.LastBooks, model.BookRecord{Title: "Dune"})
	})

	store.Reset("u1")
	sess := store.Snapshot("u1")
	if len(sess.History) != 0 || len(sess.LastBooks) != 0 {
		t.Fatalf("expected empty session after reset, got %+v", sess)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore(time.Minute)
	store.Update("u1", func(sess *model.Session) {
		sess.LastBooks = append(sess.LastBooks, model.BookRecord{Title: "Dune"})
	})

	sess := store.Snapshot("u1")
	sess.LastBooks[0].Title = "Mutated"

	if store.Snapshot("u1").LastBooks[0].Title != "Dune" {
		t.Fatal("snapshot mutation leaked into the store")
	}
}

func TestUsersAreIsolated(t *testing.T) {
	store := NewStore(time.Minute)
	store.Update("u1", func(sess *model.Session) {
		sess.History = append(sess.History, model.ChatTurn{Role: model.RoleUser, Content: "from u1"})
	})

	if sess := store.Snapshot("u2"); len(sess.History) != 0 {
		t.Fatal("sessions leaked across users")
	}
}

func TestSessionsExpireAfterTTL(t *testing.T) {
	store := NewStore(20 * time.Millisecond)
	store.Update("u1", func(sess *model.Session) {
		sess.History = append(sess.History, model.ChatTurn{Role: model.RoleUser, Content: "hi"})
	})

	time.Sleep(50 * time.Millisecond)
	if sess := store.Snapshot("u1"); len(sess.History) != 0 {
		t.Fatal("expected idle session to expire")
	}
}

func TestConcurrentUpdatesSameUserAreSerialized(t *testing.T) {
	store := NewStore(time.Minute)

	const writers = 8
	const perWriter = 5
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				store.Update("u1", func(sess *model.Session) {
					sess.LastBooks = append(sess.LastBooks, model.BookRecord{Title: "x"})
				})
			}
		}()
	}
	wg.Wait()

	sess := store.Snapshot("u1")
	if len(sess.LastBooks) != writers*perWriter {
		t.Fatalf("lost updates: expected %d records, got %d", writers*perWriter, len(sess.LastBooks))
	}
}
