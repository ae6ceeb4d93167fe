package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chirp-go/internal/config"
	"chirp-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 用户事件类型
const (
	EventUserRegistered = "user_registered"
	EventUserUpdated    = "user_updated"
	EventUserFollowed   = "user_followed"
	EventUserUnfollowed = "user_unfollowed"
)

// UserEvent 用户领域事件消息体
type UserEvent struct {
	Type       string `json:"type"`
	UserID     int64  `json:"user_id"`
	TargetID   int64  `json:"target_id,omitempty"`
	OccurredAt int64  `json:"occurred_at"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendUserEvent 发送用户事件到 Kafka
func SendUserEvent(ctx context.Context, topic string, event *UserEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal user event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("user-%d", event.UserID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send user event: %w", err)
	}

	logger.Info("User event sent",
		zap.String("type", event.Type),
		zap.Int64("user_id", event.UserID),
		zap.String("topic", topic),
	)

	return nil
}

// Publisher 面向服务层的事件发布器，绑定固定 topic
type Publisher struct {
	topic string
}

func NewPublisher(topic string) *Publisher {
	return &Publisher{topic: topic}
}

// PublishUserEvent 实现服务层的 EventPublisher
func (p *Publisher) PublishUserEvent(ctx context.Context, event *UserEvent) error {
	return SendUserEvent(ctx, p.topic, event)
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
