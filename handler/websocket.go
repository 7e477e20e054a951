package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// OrderEvent payload đẩy qua kênh Redis khi đơn hàng thay đổi
type OrderEvent struct {
	OrderId    uint   `json:"orderId"`
	PublicCode string `json:"publicCode"`
	Status     string `json:"status"`
}

// PublishOrderEvent đẩy sự kiện đơn hàng lên kênh của người dùng
func PublishOrderEvent(userId uint, event OrderEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Lỗi marshal sự kiện đơn hàng: %v", err)
		return
	}
	if err := redisClient.Publish(
		context.Background(),
		fmt.Sprintf("orders:%d", userId),
		payload,
	).Err(); err != nil {
		log.Printf("Lỗi publish sự kiện đơn hàng: %v", err)
	}
}

// OrderFeedConnection xử lý WS connection theo dõi đơn hàng của một người dùng
func OrderFeedConnection(c *websocket.Conn) {
	userIdStr := c.Params("userId")
	id64, _ := strconv.ParseUint(userIdStr, 10, 64)
	userId := uint(id64)

	// Khi WS disconnect → xoá client
	defer func() {
		mu.Lock()
		if clients[userId] != nil {
			delete(clients[userId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	// Thêm client mới vào room
	mu.Lock()
	if clients[userId] == nil {
		clients[userId] = make(map[*websocket.Conn]bool)
	}
	clients[userId][c] = true
	mu.Unlock()

	// Sub kênh Redis
	pubsub := redisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("orders:%d", userId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		var event OrderEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("Lỗi đọc sự kiện đơn hàng: %v", err)
			continue
		}
		if err := c.WriteJSON(event); err != nil {
			return
		}
	}
}
