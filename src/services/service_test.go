package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/models"
)

// newTestDB abre una base SQLite en memoria aislada por test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := lib.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Profile{}, &models.ContactRequest{}, &models.Message{}))

	return db
}

func boolPtr(b bool) *bool { return &b }

// createCompleteProfile crea un perfil universitario completo, elegible para
// recibir solicitudes.
func createCompleteProfile(t *testing.T, db *gorm.DB, name string) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		UserID:                 uuid.NewString(),
		FullName:               name,
		Email:                  "test@ejemplo.com",
		Gender:                 "femenino",
		UserType:               models.UserTypeUniversitario,
		University:             "Universidad de los Andes",
		Career:                 "Ingeniería de Sistemas",
		Year:                   3,
		EntrepreneurType:       "founder",
		TeamStatus:             "buscando_equipo",
		IsTechnical:            boolPtr(true),
		SeekingTechnical:       models.SeekingTechnical,
		TechnicalSkills:        []string{"Go", "PostgreSQL"},
		SeekingTechnicalSkills: []string{"React"},
	}
	require.NoError(t, db.Create(profile).Error)

	return profile
}

// connectUsers establece una conexión aceptada de a hacia b.
func connectUsers(t *testing.T, db *gorm.DB, a, b *models.Profile) *models.ContactRequest {
	t.Helper()

	request, err := SubmitContactRequest(db, a.UserID, b.UserID, "hola")
	require.NoError(t, err)

	resolved, err := ResolveContactRequest(db, request.ID, b.UserID, DecisionAccept)
	require.NoError(t, err)

	return resolved
}
