package service

import (
	"context"
	"time"

	infraKafka "chirp-go/internal/infra/kafka"
	"chirp-go/pkg/logger"

	"go.uber.org/zap"
)

// EventPublisher 发布用户领域事件。传 nil 表示不发事件（测试或未接入消息队列时）。
type EventPublisher interface {
	PublishUserEvent(ctx context.Context, event *infraKafka.UserEvent) error
}

// publishEvent 发布事件，失败只记日志不影响主流程
func publishEvent(p EventPublisher, eventType string, userID, targetID int64) {
	if p == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	event := &infraKafka.UserEvent{
		Type:       eventType,
		UserID:     userID,
		TargetID:   targetID,
		OccurredAt: time.Now().Unix(),
	}
	if err := p.PublishUserEvent(ctx, event); err != nil {
		logger.Warn("User event publish failed",
			zap.String("type", eventType),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}
