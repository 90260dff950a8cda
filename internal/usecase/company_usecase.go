package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrInvalidCompanyID   = errors.New("invalid company id")
	ErrInvalidCompanyName = errors.New("invalid company name")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCurrency    = errors.New("invalid currency code")
)

// emailPattern is a basic shape check, not RFC validation: one @, no spaces,
// a dot in the domain. Applied at the boundary before anything touches the
// pricing engine.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type CreateCompanyCommand struct {
	Name     string
	Email    string
	Currency string
	Locale   string
	Settings entities.CompanySettingsInput
}

// ICompanyUseCase exposes tenant operations.

type ICompanyUseCase interface {
	Create(ctx context.Context, cmd CreateCompanyCommand) (entities.Company, error)
	GetByID(ctx context.Context, id string) (entities.Company, error)
	UpdateSettings(ctx context.Context, id string, in entities.CompanySettingsInput) (entities.Company, error)
}

type CompanyUseCase struct {
	repo interfaces.ICompanyRepository
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(repo interfaces.ICompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

func (u *CompanyUseCase) Create(ctx context.Context, cmd CreateCompanyCommand) (entities.Company, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Company{}, ErrInvalidCompanyName
	}
	email := strings.TrimSpace(cmd.Email)
	if !emailPattern.MatchString(email) {
		return entities.Company{}, ErrInvalidEmail
	}

	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = "SEK"
	}
	if len(currency) != 3 {
		return entities.Company{}, ErrInvalidCurrency
	}

	now := time.Now().UTC()
	c := entities.Company{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Currency:  currency,
		Locale:    pricing.NormalizeLocale(cmd.Locale),
		Settings:  entities.NewCompanySettings(cmd.Settings, currency),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CompanyUseCase) GetByID(ctx context.Context, id string) (entities.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Company{}, ErrInvalidCompanyID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Company{}, err
	}
	if c.ID == "" {
		return entities.Company{}, ErrCompanyNotFound
	}
	return c, nil
}

// UpdateSettings replaces the settings wholesale: absent input fields fall
// back to the documented defaults, not to the previous values, so the stored
// struct always mirrors what the settings form submitted.
func (u *CompanyUseCase) UpdateSettings(ctx context.Context, id string, in entities.CompanySettingsInput) (entities.Company, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Company{}, err
	}
	if in.NotifyEmail != nil {
		notify := strings.TrimSpace(*in.NotifyEmail)
		if notify != "" && !emailPattern.MatchString(notify) {
			return entities.Company{}, ErrInvalidEmail
		}
	}

	c.Settings = entities.NewCompanySettings(in, c.Currency)
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}
