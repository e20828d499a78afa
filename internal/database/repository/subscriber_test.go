package repository_test

import (
	"context"
	"testing"

	"github.com/artur/vidfeed/internal/database/repository"
)

func TestSubscriberRepository_Subscribe(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewSubscriberRepository(db)
	ctx := context.Background()

	if err := repo.Subscribe(ctx, 100, "Test Chat"); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}

	subs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list subscribers: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("Expected 1 subscriber, got %d", len(subs))
	}
	if subs[0].ChatID != 100 || subs[0].Title != "Test Chat" {
		t.Errorf("Unexpected subscriber: %+v", subs[0])
	}
}

func TestSubscriberRepository_Subscribe_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewSubscriberRepository(db)
	ctx := context.Background()

	if err := repo.Subscribe(ctx, 100, "Old Title"); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}
	if err := repo.Subscribe(ctx, 100, "New Title"); err != nil {
		t.Fatalf("Failed to re-subscribe: %v", err)
	}

	subs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list subscribers: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("Expected 1 subscriber after re-subscribe, got %d", len(subs))
	}
	if subs[0].Title != "New Title" {
		t.Errorf("Expected title updated to 'New Title', got %q", subs[0].Title)
	}
}

func TestSubscriberRepository_Unsubscribe(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewSubscriberRepository(db)
	ctx := context.Background()

	if err := repo.Subscribe(ctx, 100, "Chat A"); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}
	if err := repo.Subscribe(ctx, 200, "Chat B"); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}

	if err := repo.Unsubscribe(ctx, 100); err != nil {
		t.Fatalf("Failed to unsubscribe: %v", err)
	}

	subs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list subscribers: %v", err)
	}
	if len(subs) != 1 || subs[0].ChatID != 200 {
		t.Errorf("Expected only chat 200 left, got %+v", subs)
	}

	// Unsubscribing an unknown chat is not an error
	if err := repo.Unsubscribe(ctx, 999); err != nil {
		t.Errorf("Unsubscribe of unknown chat should succeed, got: %v", err)
	}
}
