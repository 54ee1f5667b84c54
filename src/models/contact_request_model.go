package models

import (
	"gorm.io/gorm"
)

// ContactRequest es una arista dirigida de remitente a destinatario. El
// índice único compuesto garantiza como máximo una solicitud por par
// ordenado, también bajo envíos concurrentes.
type ContactRequest struct {
	gorm.Model
	SenderID   string               `json:"sender_id" gorm:"size:64;not null;uniqueIndex:idx_contact_requests_pair"`
	ReceiverID string               `json:"receiver_id" gorm:"size:64;not null;uniqueIndex:idx_contact_requests_pair;index"`
	Message    string               `json:"message" gorm:"size:1000"`
	Status     ContactRequestStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
}

type ContactRequestStatus string

const (
	ContactRequestStatusPending  ContactRequestStatus = "pending"
	ContactRequestStatusAccepted ContactRequestStatus = "accepted"
	ContactRequestStatusRejected ContactRequestStatus = "rejected"
)
