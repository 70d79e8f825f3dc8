package matchinginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/decisionhr/talentrank/matching"
	"github.com/go-redis/redis/v8"
)

// RedisTrainQueue implements matching.TrainQueue using a Redis list
type RedisTrainQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisTrainQueue creates a new Redis-based training queue
func NewRedisTrainQueue(client *redis.Client, queueName string) matching.TrainQueue {
	return &RedisTrainQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds a training request to the queue
func (q *RedisTrainQueue) Enqueue(ctx context.Context, req matching.TrainRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal train request %s: %w", req.RunID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue train request %s: %w", req.RunID, err)
	}

	return nil
}

// Dequeue gets a training request from the queue (blocking with timeout)
func (q *RedisTrainQueue) Dequeue(ctx context.Context, timeout time.Duration) (*matching.TrainRequest, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when the timeout elapses
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue train request: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	var req matching.TrainRequest
	if err := json.Unmarshal([]byte(result[1]), &req); err != nil {
		return nil, fmt.Errorf("unmarshal train request: %w", err)
	}
	return &req, nil
}
