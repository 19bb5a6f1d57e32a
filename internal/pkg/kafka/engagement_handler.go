package kafka

import (
	"Rentora/internal/service"
	"context"
	"fmt"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

const (
	EventView     = "view"
	EventInquiry  = "inquiry"
	EventFavorite = "favorite"
)

// EngagementEvent 客户端埋点管道投递的互动事件
type EngagementEvent struct {
	ListingID    uint64  `json:"listingId"`
	Event        string  `json:"event"`
	ViewDuration float64 `json:"viewDuration"`
}

// EngagementHandler 消费互动事件并写入统计聚合
type EngagementHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewEngagementHandler(analyticsSvc service.AnalyticsService) *EngagementHandler {
	return &EngagementHandler{analyticsSvc: analyticsSvc}
}

func (s *EngagementHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer setup")
	return nil
}

func (s *EngagementHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer cleanup")
	return nil
}

func (s *EngagementHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("engagement process batch error", "err", err)
		return err
	}
	return nil
}

func (s *EngagementHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := DecodeEngagementEvent(msg.Value)
	if err != nil {
		// 坏消息重试也不会成功，记日志后丢弃
		log.ErrorContext(ctx, "drop malformed engagement event", "err", err)
		return nil
	}
	return s.Dispatch(ctx, event)
}

// Dispatch 按事件类型派发到对应的记录操作
func (s *EngagementHandler) Dispatch(ctx context.Context, event *EngagementEvent) error {
	switch event.Event {
	case EventView:
		return s.analyticsSvc.RecordView(ctx, event.ListingID, event.ViewDuration)
	case EventInquiry:
		return s.analyticsSvc.RecordInquiry(ctx, event.ListingID)
	case EventFavorite:
		return s.analyticsSvc.RecordFavorite(ctx, event.ListingID)
	default:
		log.InfoContext(ctx, "skip unknown engagement event", "event", event.Event)
		return nil
	}
}

func DecodeEngagementEvent(data []byte) (*EngagementEvent, error) {
	var event EngagementEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	if event.ListingID == 0 {
		return nil, fmt.Errorf("engagement event missing listingId")
	}
	return &event, nil
}
