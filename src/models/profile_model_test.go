package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func completeUniversitario() Profile {
	return Profile{
		UserID:                 "alice",
		FullName:               "Ana Torres",
		Email:                  "ana@ejemplo.com",
		Phone:                  "+34600123456",
		Gender:                 "femenino",
		UserType:               UserTypeUniversitario,
		University:             "Universidad de los Andes",
		Career:                 "Ingeniería de Sistemas",
		Year:                   3,
		EntrepreneurType:       "founder",
		TeamStatus:             "buscando_equipo",
		IsTechnical:            boolPtr(true),
		SeekingTechnical:       SeekingTechnical,
		TechnicalSkills:        []string{"Go"},
		SeekingTechnicalSkills: []string{"React"},
	}
}

func TestIsCompleteUniversitario(t *testing.T) {
	profile := completeUniversitario()
	assert.True(t, profile.IsComplete())

	missing := completeUniversitario()
	missing.University = ""
	assert.False(t, missing.IsComplete())

	missing = completeUniversitario()
	missing.Year = 0
	assert.False(t, missing.IsComplete())

	missing = completeUniversitario()
	missing.IsTechnical = nil
	assert.False(t, missing.IsComplete())

	missing = completeUniversitario()
	missing.TechnicalSkills = nil
	assert.False(t, missing.IsComplete())
}

func TestIsCompleteSkillsFollowCategory(t *testing.T) {
	// Un perfil no técnico necesita habilidades no técnicas, no técnicas
	profile := completeUniversitario()
	profile.IsTechnical = boolPtr(false)
	assert.False(t, profile.IsComplete())

	profile.NonTechnicalSkills = []string{"Ventas"}
	assert.True(t, profile.IsComplete())
}

func TestIsCompleteSeekingSkills(t *testing.T) {
	profile := completeUniversitario()
	profile.SeekingTechnicalSkills = nil
	assert.False(t, profile.IsComplete())

	profile.SeekingTechnical = SeekingNonTechnical
	assert.False(t, profile.IsComplete())
	profile.SeekingNonTechnicalSkills = []string{"Marketing"}
	assert.True(t, profile.IsComplete())

	// "both" no exige listas de búsqueda concretas
	profile = completeUniversitario()
	profile.SeekingTechnical = SeekingBoth
	profile.SeekingTechnicalSkills = nil
	assert.True(t, profile.IsComplete())
}

func TestIsCompleteNoUniversitario(t *testing.T) {
	profile := completeUniversitario()
	profile.UserType = UserTypeNoUniversitario
	profile.University = ""
	profile.Career = ""
	profile.Year = 0

	assert.False(t, profile.IsComplete())

	profile.Profession = "Diseñadora"
	profile.ExperienceYears = 5
	assert.True(t, profile.IsComplete())
}

func TestIsCompleteUnknownType(t *testing.T) {
	profile := completeUniversitario()
	profile.UserType = UserType("marciano")
	assert.False(t, profile.IsComplete())
}

func TestDiscoveryViewHidesIdentity(t *testing.T) {
	profile := completeUniversitario()
	view := profile.DiscoveryView()

	// La proyección de directorio solo lleva afinidad, nunca identidad ni
	// contacto: esos campos no existen en el tipo
	assert.Equal(t, "alice", view.UserID)
	assert.Equal(t, profile.TechnicalSkills, view.TechnicalSkills)
	assert.Equal(t, profile.EntrepreneurType, view.EntrepreneurType)
}

func TestContactViewIncludesContactFields(t *testing.T) {
	profile := completeUniversitario()
	view := profile.ContactView()

	assert.Equal(t, "Ana Torres", view.FullName)
	assert.Equal(t, "ana@ejemplo.com", view.Email)
	assert.Equal(t, "+34600123456", view.Phone)
	assert.Equal(t, "Universidad de los Andes", view.University)
}

func TestSummary(t *testing.T) {
	profile := completeUniversitario()
	profile.ProjectName = "EmprendeUni"

	summary := profile.Summary()
	assert.Equal(t, "alice", summary.UserID)
	assert.Equal(t, "Ana Torres", summary.FullName)
	assert.Equal(t, "EmprendeUni", summary.ProjectName)
}
