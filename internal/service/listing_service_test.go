package service

import (
	"Rentora/internal/model"
	"context"
	"errors"
	"strings"
	"testing"
)

func newListingFixture(properties ...*model.Property) (ListingService, *memListingRepo, *fakeGenerator) {
	listingRepo := newMemListingRepo()
	generator := &fakeGenerator{text: "阳光充足的两居室，欢迎入住。"}
	svc := NewListingService(newMemPropertyRepo(properties...), listingRepo, generator)
	return svc, listingRepo, generator
}

func TestGenerateListingPersistsContent(t *testing.T) {
	property := &model.Property{ID: 1, UserID: 7, Title: "两居室", Address: "建国路88号", Rent: 6500}
	svc, listingRepo, generator := newListingFixture(property)

	got, err := svc.GenerateListing(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("GenerateListing: %v", err)
	}

	if got.Content != "阳光充足的两居室，欢迎入住。" {
		t.Fatalf("content = %q", got.Content)
	}
	if got.PropertyID != 1 || got.UserID != 7 {
		t.Fatalf("listing refs wrong: %+v", got)
	}

	stored, err := listingRepo.GetListing(context.Background(), got.ID)
	if err != nil || stored == nil {
		t.Fatalf("listing not persisted: %v", err)
	}
	if stored.Content != got.Content {
		t.Fatalf("stored content = %q, want %q", stored.Content, got.Content)
	}

	if len(generator.prompts) != 1 || !strings.Contains(generator.prompts[0], "建国路88号") {
		t.Fatalf("prompt must fold property attributes, got %v", generator.prompts)
	}
}

func TestGenerateListingPropertyNotFound(t *testing.T) {
	svc, _, generator := newListingFixture()

	_, err := svc.GenerateListing(context.Background(), 42, 7)
	if !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("err = %v, want ErrPropertyNotFound", err)
	}
	if len(generator.prompts) != 0 {
		t.Fatal("generation must not run for a missing property")
	}
}

func TestGenerateListingNoDeduplication(t *testing.T) {
	property := &model.Property{ID: 1, UserID: 7, Title: "两居室"}
	svc, _, _ := newListingFixture(property)
	ctx := context.Background()

	first, err := svc.GenerateListing(ctx, 1, 7)
	if err != nil {
		t.Fatalf("first GenerateListing: %v", err)
	}
	second, err := svc.GenerateListing(ctx, 1, 7)
	if err != nil {
		t.Fatalf("second GenerateListing: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("repeated generation must create independent listings")
	}

	listings, err := svc.GetUserListings(ctx, 7)
	if err != nil {
		t.Fatalf("GetUserListings: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("user listings = %d, want 2", len(listings))
	}
}

func TestGetListingNotFound(t *testing.T) {
	svc, _, _ := newListingFixture()

	_, err := svc.GetListing(context.Background(), 404)
	if !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("err = %v, want ErrListingNotFound", err)
	}
}

func TestUpdateListingContent(t *testing.T) {
	property := &model.Property{ID: 1, UserID: 7}
	svc, listingRepo, _ := newListingFixture(property)
	ctx := context.Background()

	created, err := svc.GenerateListing(ctx, 1, 7)
	if err != nil {
		t.Fatalf("GenerateListing: %v", err)
	}

	updated, err := svc.UpdateListingContent(ctx, created.ID, "人工改写后的文案")
	if err != nil {
		t.Fatalf("UpdateListingContent: %v", err)
	}
	if updated.Content != "人工改写后的文案" {
		t.Fatalf("content = %q", updated.Content)
	}

	stored, _ := listingRepo.GetListing(ctx, created.ID)
	if stored.Content != "人工改写后的文案" {
		t.Fatalf("stored content = %q", stored.Content)
	}
}

func TestDeleteListing(t *testing.T) {
	property := &model.Property{ID: 1, UserID: 7}
	svc, _, _ := newListingFixture(property)
	ctx := context.Background()

	created, err := svc.GenerateListing(ctx, 1, 7)
	if err != nil {
		t.Fatalf("GenerateListing: %v", err)
	}

	if err = svc.DeleteListing(ctx, created.ID); err != nil {
		t.Fatalf("DeleteListing: %v", err)
	}
	if _, err = svc.GetListing(ctx, created.ID); !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("err = %v, want ErrListingNotFound after delete", err)
	}
	if err = svc.DeleteListing(ctx, created.ID); !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("second delete err = %v, want ErrListingNotFound", err)
	}
}
