package kafka

import (
	"Rentora/internal/api/dto"
	"context"
	"testing"
)

type recordingAnalyticsService struct {
	views     []float64
	inquiries int
	favorites int
}

func (s *recordingAnalyticsService) RecordView(ctx context.Context, listingID uint64, durationSeconds float64) error {
	s.views = append(s.views, durationSeconds)
	return nil
}

func (s *recordingAnalyticsService) RecordInquiry(ctx context.Context, listingID uint64) error {
	s.inquiries++
	return nil
}

func (s *recordingAnalyticsService) RecordFavorite(ctx context.Context, listingID uint64) error {
	s.favorites++
	return nil
}

func (s *recordingAnalyticsService) GetListingAnalytics(ctx context.Context, listingID uint64) (*dto.ListingAnalyticsDTO, error) {
	return nil, nil
}

func TestDecodeEngagementEvent(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"view event", `{"listingId":5,"event":"view","viewDuration":3.5}`, false},
		{"inquiry event", `{"listingId":5,"event":"inquiry"}`, false},
		{"missing listingId", `{"event":"view"}`, true},
		{"not json", `view,5`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := DecodeEngagementEvent([]byte(tc.payload))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected decode error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeEngagementEvent: %v", err)
			}
			if event.ListingID != 5 {
				t.Fatalf("listingId = %d, want 5", event.ListingID)
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	svc := &recordingAnalyticsService{}
	h := NewEngagementHandler(svc)
	ctx := context.Background()

	if err := h.Dispatch(ctx, &EngagementEvent{ListingID: 1, Event: EventView, ViewDuration: 7}); err != nil {
		t.Fatalf("Dispatch view: %v", err)
	}
	if err := h.Dispatch(ctx, &EngagementEvent{ListingID: 1, Event: EventInquiry}); err != nil {
		t.Fatalf("Dispatch inquiry: %v", err)
	}
	if err := h.Dispatch(ctx, &EngagementEvent{ListingID: 1, Event: EventFavorite}); err != nil {
		t.Fatalf("Dispatch favorite: %v", err)
	}
	if err := h.Dispatch(ctx, &EngagementEvent{ListingID: 1, Event: "unknown"}); err != nil {
		t.Fatalf("unknown event must be skipped without error: %v", err)
	}

	if len(svc.views) != 1 || svc.views[0] != 7 {
		t.Fatalf("views = %v, want [7]", svc.views)
	}
	if svc.inquiries != 1 || svc.favorites != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", svc.inquiries, svc.favorites)
	}
}
