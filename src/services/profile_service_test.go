package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emprendeuni/Backend-EmprendeUni/src/apperrors"
	"github.com/emprendeuni/Backend-EmprendeUni/src/models"
)

func strPtr(s string) *string { return &s }

func TestEnsureProfileCreatesOnFirstSeen(t *testing.T) {
	db := newTestDB(t)

	profile, err := EnsureProfile(db, "auth0|abc123", "Ana@Ejemplo.COM", "Ana <b>Torres</b>")
	require.NoError(t, err)

	assert.Equal(t, "auth0|abc123", profile.UserID)
	assert.Equal(t, "ana@ejemplo.com", profile.Email)
	assert.Equal(t, "Ana Torres", profile.FullName)
	assert.Equal(t, models.UserTypeUniversitario, profile.UserType)
	assert.False(t, profile.IsComplete())
}

func TestEnsureProfileIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	first, err := EnsureProfile(db, "auth0|abc123", "ana@ejemplo.com", "Ana Torres")
	require.NoError(t, err)

	// La segunda sesión no pisa los datos del perfil existente
	second, err := EnsureProfile(db, "auth0|abc123", "otro@ejemplo.com", "Otro Nombre")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "ana@ejemplo.com", second.Email)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureProfileBadEmailFallsBackToEmpty(t *testing.T) {
	db := newTestDB(t)

	profile, err := EnsureProfile(db, "auth0|abc123", "no-es-un-email", "Ana Torres")
	require.NoError(t, err)
	assert.Equal(t, "", profile.Email)
}

func TestEnsureProfileRequiresSubject(t *testing.T) {
	db := newTestDB(t)

	_, err := EnsureProfile(db, "", "ana@ejemplo.com", "Ana Torres")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestUpdateProfileSanitizesFields(t *testing.T) {
	db := newTestDB(t)
	profile := createCompleteProfile(t, db, "Ana Torres")

	updated, err := UpdateProfile(db, profile.UserID, ProfilePatch{
		FullName:        strPtr("Ana <script>alert('x')</script>Torres"),
		Phone:           strPtr("+34 600<script>123456"),
		TechnicalSkills: []string{"Go", "<b></b>", "  Rust  "},
	})
	require.NoError(t, err)

	assert.NotContains(t, updated.FullName, "<")
	assert.NotContains(t, updated.Phone, "<")
	assert.Equal(t, []string{"Go", "Rust"}, updated.TechnicalSkills)
}

func TestUpdateProfileValidatesEnums(t *testing.T) {
	db := newTestDB(t)
	profile := createCompleteProfile(t, db, "Ana Torres")

	_, err := UpdateProfile(db, profile.UserID, ProfilePatch{Email: strPtr("no-es-un-email")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = UpdateProfile(db, profile.UserID, ProfilePatch{UserType: strPtr("marciano")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = UpdateProfile(db, profile.UserID, ProfilePatch{SeekingTechnical: strPtr("cualquiera")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateProfileLeavesUnsentFields(t *testing.T) {
	db := newTestDB(t)
	profile := createCompleteProfile(t, db, "Ana Torres")

	updated, err := UpdateProfile(db, profile.UserID, ProfilePatch{
		University: strPtr("Universidad Politécnica"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Universidad Politécnica", updated.University)
	assert.Equal(t, "Ana Torres", updated.FullName)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, updated.TechnicalSkills)
}

func TestUpdateProfileSwitchesCategory(t *testing.T) {
	db := newTestDB(t)
	profile := createCompleteProfile(t, db, "Ana Torres")

	updated, err := UpdateProfile(db, profile.UserID, ProfilePatch{
		UserType:        strPtr(string(models.UserTypeNoUniversitario)),
		Profession:      strPtr("Ingeniera de Software"),
		ExperienceYears: intPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, models.UserTypeNoUniversitario, updated.UserType)
	assert.True(t, updated.IsComplete())
}

func intPtr(i int) *int { return &i }

func TestDiscoverExcludesViewerAndIncomplete(t *testing.T) {
	db := newTestDB(t)
	viewer := createCompleteProfile(t, db, "Ana Torres")
	other := createCompleteProfile(t, db, "María García")

	incomplete, err := EnsureProfile(db, "auth0|nuevo", "nuevo@ejemplo.com", "Perfil Nuevo")
	require.NoError(t, err)

	views, err := Discover(db, viewer.UserID, DiscoveryFilters{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, other.UserID, views[0].UserID)

	for _, view := range views {
		assert.NotEqual(t, viewer.UserID, view.UserID)
		assert.NotEqual(t, incomplete.UserID, view.UserID)
	}
}

func TestDiscoverFilters(t *testing.T) {
	db := newTestDB(t)
	viewer := createCompleteProfile(t, db, "Ana Torres")

	fintech := createCompleteProfile(t, db, "María García")
	require.NoError(t, db.Model(fintech).Update("project_sector", "fintech").Error)

	createCompleteProfile(t, db, "Carmen Díaz")

	views, err := Discover(db, viewer.UserID, DiscoveryFilters{ProjectSector: "fintech"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, fintech.UserID, views[0].UserID)

	views, err = Discover(db, viewer.UserID, DiscoveryFilters{Skill: "PostgreSQL"})
	require.NoError(t, err)
	assert.Len(t, views, 2)

	views, err = Discover(db, viewer.UserID, DiscoveryFilters{Skill: "COBOL"})
	require.NoError(t, err)
	assert.Empty(t, views)

	views, err = Discover(db, viewer.UserID, DiscoveryFilters{UserType: string(models.UserTypeNoUniversitario)})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestContactDetailsRequiresConnection(t *testing.T) {
	db := newTestDB(t)
	viewer := createCompleteProfile(t, db, "Ana Torres")
	target := createCompleteProfile(t, db, "María García")

	// Sin conexión no hay proyección, y no es un error
	details, err := ContactDetails(db, viewer.UserID, target.UserID)
	require.NoError(t, err)
	assert.Nil(t, details)

	connectUsers(t, db, viewer, target)

	details, err = ContactDetails(db, viewer.UserID, target.UserID)
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, target.UserID, details.UserID)
	assert.Equal(t, "María García", details.FullName)
	assert.Equal(t, "test@ejemplo.com", details.Email)

	// La conexión es simétrica
	details, err = ContactDetails(db, target.UserID, viewer.UserID)
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, viewer.UserID, details.UserID)
}

func TestContactDetailsSelf(t *testing.T) {
	db := newTestDB(t)
	viewer := createCompleteProfile(t, db, "Ana Torres")

	// Nadie está "conectado" consigo mismo en la proyección
	details, err := ContactDetails(db, viewer.UserID, viewer.UserID)
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestUpdateProfileOnlyOwner(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateProfile(db, "", ProfilePatch{})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
