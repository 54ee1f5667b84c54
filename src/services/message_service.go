package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/emprendeuni/Backend-EmprendeUni/src/apperrors"
	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/models"
	"github.com/emprendeuni/Backend-EmprendeUni/src/policy"
)

const defaultMessageSubject = "Chat message"

// MessageView es un mensaje de la bandeja con los resúmenes de remitente y
// destinatario.
type MessageView struct {
	models.Message
	SenderProfile   *models.ProfileSummary `json:"sender_profile,omitempty"`
	ReceiverProfile *models.ProfileSummary `json:"receiver_profile,omitempty"`
}

// SendMessage sanea el contenido y lo inserta como no leído. Solo procede si
// los usuarios están conectados; el chequeo se hace aquí, en el servidor,
// nunca se confía en el cliente.
func SendMessage(db *gorm.DB, senderID, receiverID, subject, content string) (*models.Message, error) {
	if senderID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	content = lib.SanitizeText(content, models.MaxMessageContentLength)
	if content == "" {
		return nil, fmt.Errorf("%w: el mensaje no puede estar vacío", apperrors.ErrValidation)
	}

	if err := policy.Authorize(db, senderID, policy.ActionSendMessage, receiverID); err != nil {
		return nil, err
	}

	subject = lib.SanitizeText(subject, models.MaxMessageSubjectLength)
	if subject == "" {
		subject = defaultMessageSubject
	}

	message := models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Subject:    subject,
		Content:    content,
		Read:       false,
	}

	if err := db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	return &message, nil
}

// Conversation devuelve todos los mensajes entre el lector y el otro usuario
// en orden cronológico (empates por id). Como efecto del camino de lectura,
// los mensajes no leídos dirigidos al lector se marcan leídos en un solo
// UPDATE condicional: abrir la conversación implica leerla. La operación es
// idempotente bajo reentrada concurrente.
func Conversation(db *gorm.DB, viewerID, otherID string) ([]models.Message, error) {
	if viewerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var messages []models.Message
	err := db.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		viewerID, otherID, otherID, viewerID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	result := db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read = ?", otherID, viewerID, false).
		Update("read", true)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, result.Error)
	}

	if result.RowsAffected > 0 {
		for i := range messages {
			if messages[i].ReceiverID == viewerID {
				messages[i].Read = true
			}
		}
	}

	return messages, nil
}

// Inbox devuelve todos los mensajes que tocan al usuario, más recientes
// primero, con los perfiles de las contrapartes.
func Inbox(db *gorm.DB, userID string) ([]MessageView, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var messages []models.Message
	err := db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	idSet := make(map[string]struct{}, len(messages)*2)
	ids := make([]string, 0, len(messages)*2)
	for _, message := range messages {
		for _, id := range []string{message.SenderID, message.ReceiverID} {
			if _, seen := idSet[id]; !seen {
				idSet[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	summaries, err := profileSummaries(db, ids)
	if err != nil {
		return nil, err
	}

	views := make([]MessageView, 0, len(messages))
	for _, message := range messages {
		view := MessageView{Message: message}
		if summary, ok := summaries[message.SenderID]; ok {
			view.SenderProfile = &summary
		}
		if summary, ok := summaries[message.ReceiverID]; ok {
			view.ReceiverProfile = &summary
		}
		views = append(views, view)
	}

	return views, nil
}

// UnreadCount cuenta los mensajes no leídos dirigidos al usuario.
func UnreadCount(db *gorm.DB, userID string) (int64, error) {
	if userID == "" {
		return 0, apperrors.ErrUnauthorized
	}

	var count int64
	err := db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	return count, nil
}
