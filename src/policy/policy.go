// Package policy es el punto único de autorización del servicio. Toda
// lectura o escritura sobre solicitudes, mensajes o la proyección de
// contactos pasa por aquí antes de tocar el almacén; los chequeos del
// cliente son solo orientativos y nunca se confían.
package policy

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emprendeuni/Backend-EmprendeUni/src/apperrors"
	"github.com/emprendeuni/Backend-EmprendeUni/src/models"
)

type Action string

const (
	ActionCreateRequest      Action = "contact_request.create"
	ActionResolveRequest     Action = "contact_request.resolve"
	ActionSendMessage        Action = "message.create"
	ActionReadContactDetails Action = "profile.read_contact_details"
	ActionUpdateProfile      Action = "profile.update"
)

// UsersAreConnected evalúa el predicado derivado de conexión: existe una
// solicitud aceptada entre a y b en cualquier dirección. Es la única puerta
// para mensajería y para la proyección de contactos.
func UsersAreConnected(db *gorm.DB, a, b string) (bool, error) {
	if a == "" || b == "" || a == b {
		return false, nil
	}

	var count int64
	err := db.Model(&models.ContactRequest{}).
		Where("status = ?", models.ContactRequestStatusAccepted).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			a, b, b, a).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	return count > 0, nil
}

// Authorize decide si el actor puede ejecutar la acción sobre el recurso
// (otro usuario). Devuelve nil o el tipo de fallo correspondiente.
func Authorize(db *gorm.DB, actor string, action Action, resource string) error {
	if actor == "" {
		return apperrors.ErrUnauthorized
	}

	switch action {
	case ActionCreateRequest:
		return authorizeCreateRequest(db, actor, resource)

	case ActionSendMessage, ActionReadContactDetails:
		connected, err := UsersAreConnected(db, actor, resource)
		if err != nil {
			return err
		}
		if !connected {
			return apperrors.ErrUnauthorized
		}
		return nil

	case ActionUpdateProfile:
		if actor != resource {
			return apperrors.ErrUnauthorized
		}
		return nil

	case ActionResolveRequest:
		// La transición en sí se condiciona atómicamente en el UPDATE;
		// aquí solo se exige un actor autenticado.
		return nil
	}

	return apperrors.ErrPolicyDenied
}

// Solo los universitarios con perfil completo pueden recibir solicitudes de
// contacto.
func authorizeCreateRequest(db *gorm.DB, actor, receiverID string) error {
	if receiverID == "" || actor == receiverID {
		return apperrors.ErrPolicyDenied
	}

	var receiver models.Profile
	err := db.Where("user_id = ?", receiverID).First(&receiver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	if receiver.UserType != models.UserTypeUniversitario || !receiver.IsComplete() {
		return apperrors.ErrPolicyDenied
	}

	return nil
}
