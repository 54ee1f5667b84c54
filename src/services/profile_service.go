package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emprendeuni/Backend-EmprendeUni/src/apperrors"
	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/models"
	"github.com/emprendeuni/Backend-EmprendeUni/src/policy"
)

const maxShortFieldLength = 100

// DiscoveryFilters son los filtros opcionales del directorio.
type DiscoveryFilters struct {
	UserType      string
	ProjectSector string
	Skill         string
}

// EnsureProfile carga el perfil del sujeto o lo crea vacío con los valores
// del proveedor de identidad en la primera sesión autenticada.
func EnsureProfile(db *gorm.DB, subject, email, name string) (*models.Profile, error) {
	if subject == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var profile models.Profile
	err := db.Where("user_id = ?", subject).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	sanitizedEmail, emailErr := lib.SanitizeEmail(email)
	if emailErr != nil {
		sanitizedEmail = ""
	}

	profile = models.Profile{
		UserID:   subject,
		Email:    sanitizedEmail,
		FullName: lib.SanitizeText(name, maxShortFieldLength),
		UserType: models.UserTypeUniversitario,
	}

	if err := db.Create(&profile).Error; err != nil {
		// Dos primeras peticiones concurrentes: una gana, la otra relee
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("user_id = ?", subject).First(&profile).Error; err != nil {
				return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
			}
			return &profile, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	return &profile, nil
}

// ProfilePatch son los campos que el dueño puede modificar de su perfil.
// Punteros y slices nil distinguen "no enviado" de "vaciar".
type ProfilePatch struct {
	FullName         *string `json:"full_name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Location         *string `json:"location"`
	Region           *string `json:"region"`
	AvatarURL        *string `json:"avatar_url"`
	Gender           *string `json:"gender"`
	UserType         *string `json:"user_type"`
	University       *string `json:"university"`
	Career           *string `json:"career"`
	Year             *int    `json:"year"`
	Profession       *string `json:"profession"`
	ExperienceYears  *int    `json:"experience_years"`
	EntrepreneurType *string `json:"entrepreneur_type"`
	TeamStatus       *string `json:"team_status"`
	TeamSize         *int    `json:"team_size"`
	IsTechnical      *bool   `json:"is_technical"`
	SeekingTechnical *string `json:"seeking_technical"`

	TechnicalSkills           []string `json:"technical_skills"`
	NonTechnicalSkills        []string `json:"non_technical_skills"`
	SeekingTechnicalSkills    []string `json:"seeking_technical_skills"`
	SeekingNonTechnicalSkills []string `json:"seeking_non_technical_skills"`
	Interests                 []string `json:"interests"`
	Hobbies                   []string `json:"hobbies"`
	SupportAreas              []string `json:"support_areas"`

	ProjectName        *string `json:"project_name"`
	ProjectDescription *string `json:"project_description"`
	ProjectSector      *string `json:"project_sector"`
	ProjectStage       *string `json:"project_stage"`
}

// UpdateProfile aplica el parche al perfil del dueño. Solo el sujeto del
// perfil puede mutarlo.
func UpdateProfile(db *gorm.DB, userID string, patch ProfilePatch) (*models.Profile, error) {
	if err := policy.Authorize(db, userID, policy.ActionUpdateProfile, userID); err != nil {
		return nil, err
	}

	var profile models.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	if err := applyPatch(&profile, patch); err != nil {
		return nil, err
	}

	if err := db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	return &profile, nil
}

func applyPatch(profile *models.Profile, patch ProfilePatch) error {
	setShort := func(dst *string, src *string) {
		if src != nil {
			*dst = lib.SanitizeText(*src, maxShortFieldLength)
		}
	}

	setShort(&profile.FullName, patch.FullName)
	setShort(&profile.Location, patch.Location)
	setShort(&profile.Region, patch.Region)
	setShort(&profile.Gender, patch.Gender)
	setShort(&profile.University, patch.University)
	setShort(&profile.Career, patch.Career)
	setShort(&profile.Profession, patch.Profession)
	setShort(&profile.EntrepreneurType, patch.EntrepreneurType)
	setShort(&profile.TeamStatus, patch.TeamStatus)
	setShort(&profile.ProjectName, patch.ProjectName)
	setShort(&profile.ProjectSector, patch.ProjectSector)
	setShort(&profile.ProjectStage, patch.ProjectStage)

	if patch.Email != nil {
		email, err := lib.SanitizeEmail(*patch.Email)
		if err != nil {
			return fmt.Errorf("%w: email inválido", apperrors.ErrValidation)
		}
		profile.Email = email
	}
	if patch.Phone != nil {
		profile.Phone = lib.SanitizePhone(*patch.Phone)
	}
	if patch.AvatarURL != nil {
		profile.AvatarURL = lib.SanitizeText(*patch.AvatarURL, 255)
	}
	if patch.ProjectDescription != nil {
		profile.ProjectDescription = lib.SanitizeText(*patch.ProjectDescription, models.MaxMessageContentLength)
	}

	if patch.UserType != nil {
		switch models.UserType(*patch.UserType) {
		case models.UserTypeUniversitario, models.UserTypeNoUniversitario:
			profile.UserType = models.UserType(*patch.UserType)
		default:
			return fmt.Errorf("%w: tipo de usuario inválido", apperrors.ErrValidation)
		}
	}
	if patch.SeekingTechnical != nil {
		switch *patch.SeekingTechnical {
		case "", models.SeekingTechnical, models.SeekingNonTechnical, models.SeekingBoth:
			profile.SeekingTechnical = *patch.SeekingTechnical
		default:
			return fmt.Errorf("%w: valor de búsqueda inválido", apperrors.ErrValidation)
		}
	}

	if patch.Year != nil {
		profile.Year = *patch.Year
	}
	if patch.ExperienceYears != nil {
		profile.ExperienceYears = *patch.ExperienceYears
	}
	if patch.TeamSize != nil {
		profile.TeamSize = *patch.TeamSize
	}
	if patch.IsTechnical != nil {
		profile.IsTechnical = patch.IsTechnical
	}

	setTags := func(dst *[]string, src []string) {
		if src != nil {
			*dst = sanitizeTags(src)
		}
	}
	setTags(&profile.TechnicalSkills, patch.TechnicalSkills)
	setTags(&profile.NonTechnicalSkills, patch.NonTechnicalSkills)
	setTags(&profile.SeekingTechnicalSkills, patch.SeekingTechnicalSkills)
	setTags(&profile.SeekingNonTechnicalSkills, patch.SeekingNonTechnicalSkills)
	setTags(&profile.Interests, patch.Interests)
	setTags(&profile.Hobbies, patch.Hobbies)
	setTags(&profile.SupportAreas, patch.SupportAreas)

	return nil
}

func sanitizeTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if value := lib.SanitizeText(tag, maxShortFieldLength); value != "" {
			cleaned = append(cleaned, value)
		}
	}
	return cleaned
}

// Discover lista los perfiles completos del directorio, excluyendo al
// propio usuario y ocultando nombre y campos de contacto: la afinidad se
// evalúa sin identificar a nadie hasta que haya conexión.
func Discover(db *gorm.DB, viewerID string, filters DiscoveryFilters) ([]models.DiscoveryProfile, error) {
	if viewerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	query := db.Where("user_id <> ?", viewerID)
	if filters.UserType != "" {
		query = query.Where("user_type = ?", filters.UserType)
	}
	if filters.ProjectSector != "" {
		query = query.Where("project_sector = ?", filters.ProjectSector)
	}

	var profiles []models.Profile
	if err := query.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	views := make([]models.DiscoveryProfile, 0, len(profiles))
	for i := range profiles {
		profile := &profiles[i]
		if !profile.IsComplete() {
			continue
		}
		if filters.Skill != "" && !hasSkill(profile, filters.Skill) {
			continue
		}
		views = append(views, profile.DiscoveryView())
	}

	return views, nil
}

func hasSkill(profile *models.Profile, skill string) bool {
	for _, set := range [][]string{profile.TechnicalSkills, profile.NonTechnicalSkills} {
		for _, s := range set {
			if s == skill {
				return true
			}
		}
	}
	return false
}

// ContactDetails devuelve la proyección ampliada del perfil objetivo solo si
// el lector está conectado con él. La ausencia de conexión no es un error:
// es el estado por defecto y se responde con nil.
func ContactDetails(db *gorm.DB, viewerID, targetID string) (*models.ContactDetails, error) {
	if viewerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	connected, err := policy.UsersAreConnected(db, viewerID, targetID)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, nil
	}

	var target models.Profile
	err = db.Where("user_id = ?", targetID).First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}

	details := target.ContactView()
	return &details, nil
}
