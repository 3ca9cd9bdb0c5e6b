package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"vocab-builder/internal/domain"
	"vocab-builder/internal/dto"
	"vocab-builder/internal/util"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
	MinPasswordLength = 6
	MaxWordLength     = 100
	MaxDefinitionLen  = 1000
	MaxNameLength     = 50
	DefaultPageLimit  = 20
	MaxPageLimit      = 100
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSignupRequest validates a new account
func (v *Validator) ValidateSignupRequest(req *dto.SignupRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	username := strings.TrimSpace(req.Username)
	switch {
	case username == "":
		errors = append(errors, domain.NewMissingFieldError("username"))
	case utf8.RuneCountInString(username) < MinUsernameLength || utf8.RuneCountInString(username) > MaxUsernameLength:
		errors = append(errors, domain.NewOutOfRangeError("username", len(username), MinUsernameLength, MaxUsernameLength))
	case !usernamePattern.MatchString(username):
		errors = append(errors, domain.NewInvalidFormatError("username", username))
	}

	errors = append(errors, v.validateEmail(req.Email, true)...)
	errors = append(errors, v.validatePassword("password", req.Password)...)
	errors = append(errors, v.validateName("firstName", req.FirstName)...)
	errors = append(errors, v.validateName("lastName", req.LastName)...)

	return errors
}

// ValidateLoginRequest validates the login request
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(req.Identifier) == "" {
		errors = append(errors, domain.NewMissingFieldError("identifier"))
	}
	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}
	return errors
}

func (v *Validator) ValidateChangePasswordRequest(req *dto.ChangePasswordRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.CurrentPassword == "" {
		errors = append(errors, domain.NewMissingFieldError("currentPassword"))
	}
	errors = append(errors, v.validatePassword("newPassword", req.NewPassword)...)
	return errors
}

// ValidateUpdateProfileRequest checks only the fields that are present.
func (v *Validator) ValidateUpdateProfileRequest(req *dto.UpdateProfileRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		errors = append(errors, v.validateEmail(*req.Email, false)...)
	}
	if req.FirstName != nil {
		errors = append(errors, v.validateName("firstName", *req.FirstName)...)
	}
	if req.LastName != nil {
		errors = append(errors, v.validateName("lastName", *req.LastName)...)
	}
	return errors
}

// ValidateWordRequest validates a vocabulary entry
func (v *Validator) ValidateWordRequest(req *dto.WordRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	word := strings.TrimSpace(req.Word)
	if word == "" {
		errors = append(errors, domain.NewMissingFieldError("word"))
	} else if utf8.RuneCountInString(word) > MaxWordLength {
		errors = append(errors, domain.NewOutOfRangeError("word", utf8.RuneCountInString(word), 1, MaxWordLength))
	}

	definition := strings.TrimSpace(req.Definition)
	if definition == "" {
		errors = append(errors, domain.NewMissingFieldError("definition"))
	} else if utf8.RuneCountInString(definition) > MaxDefinitionLen {
		errors = append(errors, domain.NewOutOfRangeError("definition", utf8.RuneCountInString(definition), 1, MaxDefinitionLen))
	}

	return errors
}

// ValidateQuestionCount parses the count query parameter. An empty value
// yields defaultCount.
func (v *Validator) ValidateQuestionCount(countStr string, defaultCount, maxCount int) (int, domain.ValidationErrors) {
	if strings.TrimSpace(countStr) == "" {
		return defaultCount, nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(countStr))
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("count", countStr)}
	}
	if count < 1 || count > maxCount {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("count", count, 1, maxCount)}
	}
	return count, nil
}

// ValidateSubmitQuizRequest validates the quiz submission
func (v *Validator) ValidateSubmitQuizRequest(req *dto.SubmitQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.ValidateID("quizId", req.QuizID)...)

	for i, answer := range req.Answers {
		if strings.TrimSpace(answer.QuestionID) == "" {
			errors = append(errors, domain.NewMissingFieldError("answers["+strconv.Itoa(i)+"].questionId"))
		}
	}

	return errors
}

// ValidateRecordQuizResultRequest validates a manually recorded score
func (v *Validator) ValidateRecordQuizResultRequest(req *dto.RecordQuizResultRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.TotalQuestions < 1 {
		errors = append(errors, domain.ValidationError{
			Field:   "totalQuestions",
			Code:    domain.CodeOutOfRange,
			Message: "totalQuestions must be at least 1",
			Value:   req.TotalQuestions,
		})
	} else if req.Score < 0 || req.Score > req.TotalQuestions {
		errors = append(errors, domain.NewOutOfRangeError("score", req.Score, 0, req.TotalQuestions))
	}
	return errors
}

// ValidatePagination fills in defaults and converts the page into an offset.
func (v *Validator) ValidatePagination(p *dto.Pagination) (limit, offset int, errors domain.ValidationErrors) {
	limit = p.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit < 1 || limit > MaxPageLimit {
		errors = append(errors, domain.NewOutOfRangeError("limit", p.Limit, 1, MaxPageLimit))
	}
	page := p.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		errors = append(errors, domain.NewInvalidFormatError("page", p.Page))
	}
	if len(errors) > 0 {
		return 0, 0, errors
	}
	return limit, (page - 1) * limit, nil
}

// ValidateID checks that a path or body identifier is a ULID.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

func (v *Validator) validateEmail(email string, required bool) domain.ValidationErrors {
	email = strings.TrimSpace(email)
	if email == "" {
		if required {
			return domain.ValidationErrors{domain.NewMissingFieldError("email")}
		}
		return nil
	}
	if !emailPattern.MatchString(email) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("email", email)}
	}
	return nil
}

func (v *Validator) validatePassword(field, password string) domain.ValidationErrors {
	if password == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if len(password) < MinPasswordLength {
		return domain.ValidationErrors{{
			Field:   field,
			Code:    domain.CodeOutOfRange,
			Message: field + " must be at least " + strconv.Itoa(MinPasswordLength) + " characters",
		}}
	}
	// bcrypt ignores everything past 72 bytes
	if len(password) > 72 {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, len(password), MinPasswordLength, 72)}
	}
	return nil
}

func (v *Validator) validateName(field, name string) domain.ValidationErrors {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > MaxNameLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, len(name), 0, MaxNameLength)}
	}
	return nil
}
