package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/emprendeuni/Backend-EmprendeUni/src/apperrors"
	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/models"
	"github.com/emprendeuni/Backend-EmprendeUni/src/policy"
)

// MaxRequestMessageLength bounds the optional invitation text.
const MaxRequestMessageLength = 1000

const defaultInvitationFormat = "Hola %s, me gustaría conectar contigo para explorar oportunidades de colaboración."

type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// ContactRequestView es la vista de bandeja de entrada de una solicitud, con
// el resumen del remitente incluido.
type ContactRequestView struct {
	ID        uint                  `json:"_id"`
	Sender    models.ProfileSummary `json:"sender"`
	Message   string                `json:"message"`
	Status    string                `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// SubmitContactRequest crea una solicitud pendiente del remitente al
// destinatario. Sin mensaje se usa la invitación estándar con el nombre del
// destinatario. La unicidad por par ordenado la garantiza el índice único:
// de dos envíos concurrentes exactamente uno gana y el otro recibe
// ErrDuplicateRequest.
func SubmitContactRequest(db *gorm.DB, senderID, receiverID, message string) (*models.ContactRequest, error) {
	if senderID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: no puedes enviarte una solicitud a ti mismo", apperrors.ErrValidation)
	}

	if err := policy.Authorize(db, senderID, policy.ActionCreateRequest, receiverID); err != nil {
		return nil, err
	}

	connected, err := policy.UsersAreConnected(db, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if connected {
		return nil, apperrors.ErrAlreadyConnected
	}

	text := lib.SanitizeText(message, MaxRequestMessageLength)
	if text == "" {
		var receiver models.Profile
		if err := db.Where("user_id = ?", receiverID).First(&receiver).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
		}
		text = fmt.Sprintf(defaultInvitationFormat, lib.SanitizeText(receiver.FullName, 100))
	}

	request := models.ContactRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    text,
		Status:     models.ContactRequestStatusPending,
	}

	if err := db.Create(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateRequest
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	return &request, nil
}

// ResolveContactRequest lleva una solicitud pendiente a su estado terminal.
// La transición se condiciona atómicamente a "sigue pendiente y el actor es
// el destinatario": de dos resoluciones concurrentes exactamente una gana.
func ResolveContactRequest(db *gorm.DB, requestID uint, receiverID string, decision Decision) (*models.ContactRequest, error) {
	if receiverID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var status models.ContactRequestStatus
	switch decision {
	case DecisionAccept:
		status = models.ContactRequestStatusAccepted
	case DecisionReject:
		status = models.ContactRequestStatusRejected
	default:
		return nil, fmt.Errorf("%w: decisión inválida", apperrors.ErrValidation)
	}

	result := db.Model(&models.ContactRequest{Model: gorm.Model{ID: requestID}}).
		Where("receiver_id = ? AND status = ?", receiverID, models.ContactRequestStatusPending).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, result.Error)
	}

	if result.RowsAffected == 0 {
		// Cero filas es un fallo, nunca un éxito silencioso. Se distingue
		// entre inexistente/ajena y ya resuelta sin filtrar existencia a
		// quien no es el destinatario.
		var existing models.ContactRequest
		err := db.First(&existing, requestID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
		}
		if existing.ReceiverID != receiverID {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.ErrAlreadyResolved
	}

	var updated models.ContactRequest
	if err := db.First(&updated, requestID).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	return &updated, nil
}

// PendingRequestsFor devuelve las solicitudes pendientes del destinatario,
// más recientes primero, con el resumen de cada remitente.
func PendingRequestsFor(db *gorm.DB, receiverID string) ([]ContactRequestView, error) {
	if receiverID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var requests []models.ContactRequest
	err := db.Where("receiver_id = ? AND status = ?", receiverID, models.ContactRequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	senderIDs := make([]string, 0, len(requests))
	for _, request := range requests {
		senderIDs = append(senderIDs, request.SenderID)
	}

	summaries, err := profileSummaries(db, senderIDs)
	if err != nil {
		return nil, err
	}

	views := make([]ContactRequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, ContactRequestView{
			ID:        request.ID,
			Sender:    summaries[request.SenderID],
			Message:   request.Message,
			Status:    string(request.Status),
			CreatedAt: request.CreatedAt,
			UpdatedAt: request.UpdatedAt,
		})
	}

	return views, nil
}

// ConnectionsOf devuelve los resúmenes de perfil de todos los usuarios
// conectados con userID.
func ConnectionsOf(db *gorm.DB, userID string) ([]models.ProfileSummary, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var connections []models.ContactRequest
	err := db.Where("(sender_id = ? OR receiver_id = ?) AND status = ?",
		userID, userID, models.ContactRequestStatusAccepted).
		Find(&connections).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	counterpartIDs := make([]string, 0, len(connections))
	for _, conn := range connections {
		if conn.SenderID == userID {
			counterpartIDs = append(counterpartIDs, conn.ReceiverID)
		} else {
			counterpartIDs = append(counterpartIDs, conn.SenderID)
		}
	}

	summaries, err := profileSummaries(db, counterpartIDs)
	if err != nil {
		return nil, err
	}

	contacts := make([]models.ProfileSummary, 0, len(counterpartIDs))
	for _, id := range counterpartIDs {
		if summary, ok := summaries[id]; ok {
			contacts = append(contacts, summary)
		}
	}

	return contacts, nil
}

// profileSummaries carga los resúmenes de un conjunto de usuarios en una
// sola consulta.
func profileSummaries(db *gorm.DB, userIDs []string) (map[string]models.ProfileSummary, error) {
	summaries := make(map[string]models.ProfileSummary, len(userIDs))
	if len(userIDs) == 0 {
		return summaries, nil
	}

	var profiles []models.Profile
	if err := db.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	for _, profile := range profiles {
		summaries[profile.UserID] = profile.Summary()
	}

	return summaries, nil
}
