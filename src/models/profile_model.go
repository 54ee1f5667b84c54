package models

import (
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeUniversitario   UserType = "universitario"
	UserTypeNoUniversitario UserType = "no_universitario"
)

// SeekingTechnical values
const (
	SeekingTechnical    = "technical"
	SeekingNonTechnical = "non_technical"
	SeekingBoth         = "both"
)

// Profile es el perfil de un usuario, uno por identidad. Email, Phone,
// Location y Region solo se exponen a otros usuarios a través de la
// proyección de contactos conectados.
type Profile struct {
	gorm.Model
	UserID    string `json:"user_id" gorm:"uniqueIndex;size:64"`
	FullName  string `json:"full_name"`
	Email     string `json:"email" gorm:"size:254"`
	Phone     string `json:"phone" gorm:"size:20"`
	Location  string `json:"location"`
	Region    string `json:"region"`
	AvatarURL string `json:"avatar_url"`
	Gender    string `json:"gender"`

	UserType UserType `json:"user_type" gorm:"type:varchar(20)"`

	// Campos de universitario
	University string `json:"university"`
	Career     string `json:"career"`
	Year       int    `json:"year"`

	// Campos de no universitario
	Profession      string `json:"profession"`
	ExperienceYears int    `json:"experience_years"`

	EntrepreneurType string `json:"entrepreneur_type"`
	TeamStatus       string `json:"team_status"`
	TeamSize         int    `json:"team_size"`

	IsTechnical      *bool  `json:"is_technical"`
	SeekingTechnical string `json:"seeking_technical"`

	TechnicalSkills           []string `json:"technical_skills" gorm:"serializer:json"`
	NonTechnicalSkills        []string `json:"non_technical_skills" gorm:"serializer:json"`
	SeekingTechnicalSkills    []string `json:"seeking_technical_skills" gorm:"serializer:json"`
	SeekingNonTechnicalSkills []string `json:"seeking_non_technical_skills" gorm:"serializer:json"`
	Interests                 []string `json:"interests" gorm:"serializer:json"`
	Hobbies                   []string `json:"hobbies" gorm:"serializer:json"`
	SupportAreas              []string `json:"support_areas" gorm:"serializer:json"`

	ProjectName        string `json:"project_name"`
	ProjectDescription string `json:"project_description"`
	ProjectSector      string `json:"project_sector"`
	ProjectStage       string `json:"project_stage"`
}

// IsComplete indica si el perfil cumple el conjunto de campos requeridos de
// su categoría. Un perfil incompleto no entra al directorio de exploración.
func (p *Profile) IsComplete() bool {
	base := p.FullName != "" &&
		p.UserType != "" &&
		p.Gender != "" &&
		p.EntrepreneurType != "" &&
		p.TeamStatus != "" &&
		p.IsTechnical != nil &&
		p.SeekingTechnical != ""

	if !base {
		return false
	}

	var skillsComplete bool
	if *p.IsTechnical {
		skillsComplete = len(p.TechnicalSkills) > 0
	} else {
		skillsComplete = len(p.NonTechnicalSkills) > 0
	}

	seekingComplete := true
	switch p.SeekingTechnical {
	case SeekingTechnical:
		seekingComplete = len(p.SeekingTechnicalSkills) > 0
	case SeekingNonTechnical:
		seekingComplete = len(p.SeekingNonTechnicalSkills) > 0
	}

	if !skillsComplete || !seekingComplete {
		return false
	}

	switch p.UserType {
	case UserTypeUniversitario:
		return p.University != "" && p.Career != "" && p.Year > 0
	case UserTypeNoUniversitario:
		return p.Profession != "" && p.ExperienceYears > 0
	}

	return false
}

// ProfileSummary es la vista mínima de un perfil que acompaña solicitudes y
// mensajes.
type ProfileSummary struct {
	UserID      string   `json:"user_id"`
	FullName    string   `json:"full_name"`
	AvatarURL   string   `json:"avatar_url"`
	UserType    UserType `json:"user_type"`
	ProjectName string   `json:"project_name,omitempty"`
}

// Summary reduce el perfil a su vista mínima.
func (p *Profile) Summary() ProfileSummary {
	return ProfileSummary{
		UserID:      p.UserID,
		FullName:    p.FullName,
		AvatarURL:   p.AvatarURL,
		UserType:    p.UserType,
		ProjectName: p.ProjectName,
	}
}

// DiscoveryProfile es la proyección pública del directorio: sin nombre ni
// campos de contacto, solo lo necesario para evaluar afinidad.
type DiscoveryProfile struct {
	UserID                    string   `json:"user_id"`
	AvatarURL                 string   `json:"avatar_url"`
	UserType                  UserType `json:"user_type"`
	Year                      int      `json:"year,omitempty"`
	ExperienceYears           int      `json:"experience_years,omitempty"`
	EntrepreneurType          string   `json:"entrepreneur_type"`
	TeamStatus                string   `json:"team_status"`
	TeamSize                  int      `json:"team_size"`
	IsTechnical               *bool    `json:"is_technical"`
	SeekingTechnical          string   `json:"seeking_technical"`
	TechnicalSkills           []string `json:"technical_skills"`
	NonTechnicalSkills        []string `json:"non_technical_skills"`
	SeekingTechnicalSkills    []string `json:"seeking_technical_skills"`
	SeekingNonTechnicalSkills []string `json:"seeking_non_technical_skills"`
	Interests                 []string `json:"interests"`
	Hobbies                   []string `json:"hobbies"`
	SupportAreas              []string `json:"support_areas"`
	ProjectName               string   `json:"project_name"`
	ProjectDescription        string   `json:"project_description"`
	ProjectSector             string   `json:"project_sector"`
	ProjectStage              string   `json:"project_stage"`
}

// DiscoveryView proyecta el perfil a su versión de directorio.
func (p *Profile) DiscoveryView() DiscoveryProfile {
	return DiscoveryProfile{
		UserID:                    p.UserID,
		AvatarURL:                 p.AvatarURL,
		UserType:                  p.UserType,
		Year:                      p.Year,
		ExperienceYears:           p.ExperienceYears,
		EntrepreneurType:          p.EntrepreneurType,
		TeamStatus:                p.TeamStatus,
		TeamSize:                  p.TeamSize,
		IsTechnical:               p.IsTechnical,
		SeekingTechnical:          p.SeekingTechnical,
		TechnicalSkills:           p.TechnicalSkills,
		NonTechnicalSkills:        p.NonTechnicalSkills,
		SeekingTechnicalSkills:    p.SeekingTechnicalSkills,
		SeekingNonTechnicalSkills: p.SeekingNonTechnicalSkills,
		Interests:                 p.Interests,
		Hobbies:                   p.Hobbies,
		SupportAreas:              p.SupportAreas,
		ProjectName:               p.ProjectName,
		ProjectDescription:        p.ProjectDescription,
		ProjectSector:             p.ProjectSector,
		ProjectStage:              p.ProjectStage,
	}
}

// ContactDetails es la proyección ampliada visible solo entre usuarios
// conectados: incluye los campos de contacto que el directorio oculta.
type ContactDetails struct {
	UserID             string   `json:"user_id"`
	FullName           string   `json:"full_name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Location           string   `json:"location"`
	Region             string   `json:"region"`
	University         string   `json:"university"`
	Career             string   `json:"career"`
	Profession         string   `json:"profession"`
	UserType           UserType `json:"user_type"`
	AvatarURL          string   `json:"avatar_url"`
	ProjectName        string   `json:"project_name"`
	ProjectDescription string   `json:"project_description"`
	TechnicalSkills    []string `json:"technical_skills"`
	NonTechnicalSkills []string `json:"non_technical_skills"`
	Interests          []string `json:"interests"`
	SupportAreas       []string `json:"support_areas"`
}

// ContactView proyecta el perfil a su versión para contactos conectados.
func (p *Profile) ContactView() ContactDetails {
	return ContactDetails{
		UserID:             p.UserID,
		FullName:           p.FullName,
		Email:              p.Email,
		Phone:              p.Phone,
		Location:           p.Location,
		Region:             p.Region,
		University:         p.University,
		Career:             p.Career,
		Profession:         p.Profession,
		UserType:           p.UserType,
		AvatarURL:          p.AvatarURL,
		ProjectName:        p.ProjectName,
		ProjectDescription: p.ProjectDescription,
		TechnicalSkills:    p.TechnicalSkills,
		NonTechnicalSkills: p.NonTechnicalSkills,
		Interests:          p.Interests,
		SupportAreas:       p.SupportAreas,
	}
}
