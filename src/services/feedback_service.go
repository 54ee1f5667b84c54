package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/emprendeuni/Backend-EmprendeUni/src/apperrors"
	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
)

// FeedbackInput es el cuerpo del widget de feedback.
type FeedbackInput struct {
	Type        string `json:"type" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=2000"`
	Email       string `json:"email" validate:"omitempty,email,max=254"`
}

// FeedbackClient tiene un timeout corto: el webhook es externo y la petición
// del usuario no debe quedarse colgada de él.
var FeedbackClient = &http.Client{Timeout: 10 * time.Second}

// SendFeedback reenvía el feedback al webhook configurado como GET con
// parámetros de consulta. Solo se consume éxito o fallo de la respuesta.
func SendFeedback(ctx context.Context, webhookURL string, input FeedbackInput, userID, userName string) error {
	if input.Type == "" || input.Description == "" {
		return fmt.Errorf("%w: faltan campos requeridos", apperrors.ErrValidation)
	}

	if webhookURL == "" {
		return fmt.Errorf("%w: feedback webhook not configured", apperrors.ErrTransient)
	}

	params := url.Values{}
	params.Set("type", lib.TruncateRunes(input.Type, 100))
	params.Set("description", lib.TruncateRunes(input.Description, 2000))
	if input.Email != "" {
		params.Set("email", lib.TruncateRunes(input.Email, lib.MaxEmailLength))
	}
	if userID != "" {
		params.Set("userId", userID)
	}
	if userName != "" {
		params.Set("userName", lib.TruncateRunes(userName, 100))
	}
	params.Set("timestamp", time.Now().UTC().Format(time.RFC3339))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, webhookURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	resp, err := FeedbackClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: webhook respondió %d", apperrors.ErrTransient, resp.StatusCode)
	}

	return nil
}
