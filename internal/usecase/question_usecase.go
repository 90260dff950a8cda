package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuestionNotFound      = errors.New("question not found")
	ErrInvalidQuestionID     = errors.New("invalid question id")
	ErrInvalidQuestionText   = errors.New("invalid question text")
	ErrInvalidQuestionType   = errors.New("invalid question type")
	ErrInvalidAnswerOption   = errors.New("invalid answer option")
	ErrTemplateNotFound      = errors.New("service template not found")
	ErrQuestionOrderMismatch = errors.New("order must list every question of the form exactly once")
)

type OptionInput struct {
	Label         string
	ModifierKind  string
	ModifierValue float64
}

type CreateQuestionCommand struct {
	JobTypeID string
	Text      string
	Type      entities.QuestionType
	Unit      string
	UnitRate  *float64
	Options   []OptionInput
}

type UpdateQuestionCommand struct {
	Text     *string
	Unit     *string
	UnitRate *float64
	// Options replaces the full option list when non-nil.
	Options []OptionInput
}

// IQuestionUseCase exposes estimator form authoring operations.

type IQuestionUseCase interface {
	Create(ctx context.Context, cmd CreateQuestionCommand) (entities.Question, error)
	GetByID(ctx context.Context, id string) (entities.Question, error)
	ListByJobTypeID(ctx context.Context, jobTypeID string) ([]entities.Question, error)
	Update(ctx context.Context, id string, cmd UpdateQuestionCommand) (entities.Question, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, jobTypeID string, orderedIDs []string) ([]entities.Question, error)
	Templates() []entities.ServiceTemplate
	ImportTemplate(ctx context.Context, jobTypeID, templateID string) ([]entities.Question, error)
}

type QuestionUseCase struct {
	repo        interfaces.IQuestionRepository
	jobTypeRepo interfaces.IJobTypeRepository
}

var _ IQuestionUseCase = (*QuestionUseCase)(nil)

func NewQuestionUseCase(repo interfaces.IQuestionRepository, jobTypeRepo interfaces.IJobTypeRepository) *QuestionUseCase {
	return &QuestionUseCase{repo: repo, jobTypeRepo: jobTypeRepo}
}

// buildOptions validates the authored options against the closed modifier
// vocabulary. Enforcing the enum here keeps unknown kinds out of persisted
// data, so the engine's loud unknown-kind error can only mean corruption.
func buildOptions(inputs []OptionInput) ([]entities.AnswerOption, error) {
	options := make([]entities.AnswerOption, 0, len(inputs))
	for i, in := range inputs {
		label := strings.TrimSpace(in.Label)
		if label == "" {
			return nil, fmt.Errorf("%w: option %d has no label", ErrInvalidAnswerOption, i+1)
		}
		if _, err := pricing.NormalizeOptionKind(in.ModifierKind); err != nil {
			return nil, fmt.Errorf("%w: option %q: %v", ErrInvalidAnswerOption, label, err)
		}
		options = append(options, entities.AnswerOption{
			ID:            uuid.NewString(),
			Label:         label,
			ModifierKind:  in.ModifierKind,
			ModifierValue: in.ModifierValue,
			Position:      i,
		})
	}
	return options, nil
}

func (u *QuestionUseCase) Create(ctx context.Context, cmd CreateQuestionCommand) (entities.Question, error) {
	jobTypeID := strings.TrimSpace(cmd.JobTypeID)
	if jobTypeID == "" {
		return entities.Question{}, ErrInvalidJobTypeID
	}
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return entities.Question{}, ErrInvalidQuestionText
	}
	if !cmd.Type.Valid() {
		return entities.Question{}, ErrInvalidQuestionType
	}
	if cmd.Type.IsChoice() && cmd.UnitRate != nil {
		return entities.Question{}, fmt.Errorf("%w: choice questions price through options, not a unit rate", ErrInvalidQuestionType)
	}

	jobType, err := u.jobTypeRepo.GetByID(ctx, jobTypeID)
	if err != nil {
		return entities.Question{}, err
	}
	if jobType.ID == "" {
		return entities.Question{}, ErrJobTypeNotFound
	}

	var options []entities.AnswerOption
	if cmd.Type.IsChoice() {
		if options, err = buildOptions(cmd.Options); err != nil {
			return entities.Question{}, err
		}
	}

	existing, err := u.repo.ListByJobTypeID(ctx, jobTypeID)
	if err != nil {
		return entities.Question{}, err
	}

	now := time.Now().UTC()
	q := entities.Question{
		ID:        uuid.NewString(),
		JobTypeID: jobTypeID,
		CompanyID: jobType.CompanyID,
		Text:      text,
		Type:      cmd.Type,
		Position:  len(existing),
		Unit:      strings.TrimSpace(cmd.Unit),
		UnitRate:  cmd.UnitRate,
		Options:   options,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuestionUseCase) GetByID(ctx context.Context, id string) (entities.Question, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Question{}, ErrInvalidQuestionID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Question{}, err
	}
	if q.ID == "" {
		return entities.Question{}, ErrQuestionNotFound
	}
	return q, nil
}

func (u *QuestionUseCase) ListByJobTypeID(ctx context.Context, jobTypeID string) ([]entities.Question, error) {
	jobTypeID = strings.TrimSpace(jobTypeID)
	if jobTypeID == "" {
		return nil, ErrInvalidJobTypeID
	}
	return u.repo.ListByJobTypeID(ctx, jobTypeID)
}

func (u *QuestionUseCase) Update(ctx context.Context, id string, cmd UpdateQuestionCommand) (entities.Question, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Question{}, err
	}

	if cmd.Text != nil {
		text := strings.TrimSpace(*cmd.Text)
		if text == "" {
			return entities.Question{}, ErrInvalidQuestionText
		}
		q.Text = text
	}
	if cmd.Unit != nil {
		q.Unit = strings.TrimSpace(*cmd.Unit)
	}
	if cmd.UnitRate != nil {
		if q.Type.IsChoice() {
			return entities.Question{}, fmt.Errorf("%w: choice questions price through options, not a unit rate", ErrInvalidQuestionType)
		}
		q.UnitRate = cmd.UnitRate
	}
	if cmd.Options != nil {
		if !q.Type.IsChoice() {
			return entities.Question{}, fmt.Errorf("%w: only choice questions carry options", ErrInvalidQuestionType)
		}
		options, err := buildOptions(cmd.Options)
		if err != nil {
			return entities.Question{}, err
		}
		q.Options = options
	}

	q.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, q)
}

func (u *QuestionUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// Reorder rewrites display positions. Display order is modifier application
// order, so this operation directly changes computed estimates; the full ID
// set must be supplied to make that explicit in the API.
func (u *QuestionUseCase) Reorder(ctx context.Context, jobTypeID string, orderedIDs []string) ([]entities.Question, error) {
	questions, err := u.ListByJobTypeID(ctx, jobTypeID)
	if err != nil {
		return nil, err
	}
	if len(orderedIDs) != len(questions) {
		return nil, ErrQuestionOrderMismatch
	}

	byID := make(map[string]entities.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	// Validate the complete ID set before the first write. A bad list must
	// never leave the form half-repositioned: partial position updates would
	// silently change estimates for submissions arriving in between.
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, ok := byID[id]; !ok || seen[id] {
			return nil, ErrQuestionOrderMismatch
		}
		seen[id] = true
	}

	now := time.Now().UTC()
	reordered := make([]entities.Question, 0, len(orderedIDs))
	for pos, id := range orderedIDs {
		q := byID[id]
		q.Position = pos
		q.UpdatedAt = now
		updated, err := u.repo.Update(ctx, q)
		if err != nil {
			return nil, err
		}
		reordered = append(reordered, updated)
	}
	return reordered, nil
}

func (u *QuestionUseCase) Templates() []entities.ServiceTemplate {
	return builtinTemplates
}

// ImportTemplate materializes a built-in template's questions onto a job
// type. Template modifiers use the importer vocabulary and are translated
// into stored authoring data here, at the boundary.
func (u *QuestionUseCase) ImportTemplate(ctx context.Context, jobTypeID, templateID string) ([]entities.Question, error) {
	jobTypeID = strings.TrimSpace(jobTypeID)
	if jobTypeID == "" {
		return nil, ErrInvalidJobTypeID
	}

	var tpl *entities.ServiceTemplate
	for i := range builtinTemplates {
		if builtinTemplates[i].ID == templateID {
			tpl = &builtinTemplates[i]
			break
		}
	}
	if tpl == nil {
		return nil, ErrTemplateNotFound
	}

	jobType, err := u.jobTypeRepo.GetByID(ctx, jobTypeID)
	if err != nil {
		return nil, err
	}
	if jobType.ID == "" {
		return nil, ErrJobTypeNotFound
	}

	existing, err := u.repo.ListByJobTypeID(ctx, jobTypeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := make([]entities.Question, 0, len(tpl.Questions))
	for i, tq := range tpl.Questions {
		q := entities.Question{
			ID:        uuid.NewString(),
			JobTypeID: jobTypeID,
			CompanyID: jobType.CompanyID,
			Text:      tq.Text,
			Type:      tq.Type,
			Position:  len(existing) + i,
			Unit:      tq.Unit,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if tq.UnitRate != nil {
			kind, value, err := pricing.NormalizeTemplateModifier(tq.UnitRate.Kind, tq.UnitRate.Value)
			if err != nil {
				return nil, fmt.Errorf("template %s question %q: %w", tpl.ID, tq.Text, err)
			}
			if kind != pricing.PerUnit {
				return nil, fmt.Errorf("template %s question %q: number questions only take per_unit rates", tpl.ID, tq.Text)
			}
			q.UnitRate = &value
		}

		for pos, opt := range tq.Options {
			option := entities.AnswerOption{
				ID:       uuid.NewString(),
				Label:    opt.Label,
				Position: pos,
			}
			if opt.Modifier != nil {
				kind, value, err := pricing.NormalizeTemplateModifier(opt.Modifier.Kind, opt.Modifier.Value)
				if err != nil {
					return nil, fmt.Errorf("template %s option %q: %w", tpl.ID, opt.Label, err)
				}
				optionKind, err := optionKindFor(kind)
				if err != nil {
					return nil, fmt.Errorf("template %s option %q: %w", tpl.ID, opt.Label, err)
				}
				option.ModifierKind = optionKind
				option.ModifierValue = value
			} else {
				// A no-op choice still needs a stored kind.
				option.ModifierKind = "fixed_add"
			}
			q.Options = append(q.Options, option)
		}

		saved, err := u.repo.Create(ctx, q)
		if err != nil {
			return nil, err
		}
		created = append(created, saved)
	}
	return created, nil
}

// optionKindFor maps a canonical modifier kind back onto the answer-option
// authoring vocabulary.
func optionKindFor(kind pricing.ModifierKind) (string, error) {
	switch kind {
	case pricing.AddFixed:
		return "fixed_add", nil
	case pricing.SubtractFixed:
		return "fixed_subtract", nil
	case pricing.AddPercent:
		return "percentage_add", nil
	case pricing.SubtractPercent:
		return "percentage_subtract", nil
	case pricing.Multiply:
		return "multiply", nil
	default:
		return "", fmt.Errorf("%w: %q cannot be stored on an answer option", pricing.ErrUnknownModifierKind, kind)
	}
}
