package events

import "time"

// PostEventData 是帖子领域事件携带的核心数据快照。
// 不包含口令与正文全文，下游消费者只需要元数据。
type PostEventData struct {
	PostID          uint64 `json:"post_id"`          // 帖子ID
	Title           string `json:"title"`            // 帖子标题
	Author          string `json:"author"`           // 作者名
	AttachmentCount int    `json:"attachment_count"` // 附件数量
}

// PostCreatedEvent 帖子创建事件。
type PostCreatedEvent struct {
	EventID   string        `json:"event_id"`  // 事件唯一ID
	Timestamp time.Time     `json:"timestamp"` // 事件发生时间
	Post      PostEventData `json:"post"`      // 帖子数据快照
}

// PostUpdatedEvent 帖子更新事件。
type PostUpdatedEvent struct {
	EventID   string        `json:"event_id"`
	Timestamp time.Time     `json:"timestamp"`
	Post      PostEventData `json:"post"`
}

// PostDeletedEvent 帖子删除事件。删除后快照不可得，仅携带ID。
type PostDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	PostID    uint64    `json:"post_id"`
}
