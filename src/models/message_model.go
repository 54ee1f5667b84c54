package models

import (
	"time"
)

// Limits applied to stored message fields.
const (
	MaxMessageContentLength = 2000
	MaxMessageSubjectLength = 255
)

// Message es un mensaje dirigido entre dos usuarios conectados. Solo muta el
// campo Read, de false a true y únicamente por el destinatario.
type Message struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	SenderID   string    `json:"sender_id" gorm:"size:64;not null;index:idx_messages_sender"`
	ReceiverID string    `json:"receiver_id" gorm:"size:64;not null;index:idx_messages_receiver"`
	Subject    string    `json:"subject" gorm:"size:255"`
	Content    string    `json:"content" gorm:"size:2000"`
	Read       bool      `json:"read" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}
