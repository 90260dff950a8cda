package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
)

var (
	ErrUnknownAnswerOption = errors.New("unknown answer option")
	ErrInvalidResponse     = errors.New("invalid response")
)

// ResponseInput is a submitted answer keyed by question. Choice answers carry
// option IDs, number and text answers carry the raw value.
type ResponseInput struct {
	QuestionID      string
	AnswerOptionIDs []string
	RawAnswer       string
}

// buildSelectedAnswers turns submitted responses into engine input. It walks
// the QUESTIONS in display order, not the responses, so modifier application
// order always follows the form regardless of submission order. Modifiers are
// re-derived from persisted options; client-submitted values are never priced.
func buildSelectedAnswers(questions []entities.Question, responses []ResponseInput) ([]pricing.SelectedAnswer, error) {
	byQuestion := make(map[string]ResponseInput, len(responses))
	for _, r := range responses {
		byQuestion[r.QuestionID] = r
	}

	answers := make([]pricing.SelectedAnswer, 0, len(questions))
	for _, q := range questions {
		resp, ok := byQuestion[q.ID]
		if !ok {
			continue
		}

		ans := pricing.SelectedAnswer{QuestionID: q.ID}

		switch {
		case q.Type.IsChoice():
			if q.Type == entities.QuestionTypeSingleChoice && len(resp.AnswerOptionIDs) > 1 {
				return nil, fmt.Errorf("%w: question %q takes a single option", ErrInvalidResponse, q.Text)
			}
			for _, optID := range resp.AnswerOptionIDs {
				opt, found := q.OptionByID(optID)
				if !found {
					return nil, fmt.Errorf("%w: %s", ErrUnknownAnswerOption, optID)
				}
				kind, err := pricing.NormalizeOptionKind(opt.ModifierKind)
				if err != nil {
					return nil, fmt.Errorf("question %q option %q: %w", q.Text, opt.Label, err)
				}
				ans.Modifiers = append(ans.Modifiers, pricing.Modifier{
					QuestionID: q.ID,
					Kind:       kind,
					Value:      opt.ModifierValue,
				})
			}

		case q.Type == entities.QuestionTypeNumber:
			if q.UnitRate == nil {
				continue
			}
			// Unparseable quantities price as zero rather than failing the
			// whole submission; the raw answer is still kept on the lead.
			qty, err := strconv.ParseFloat(strings.TrimSpace(resp.RawAnswer), 64)
			if err != nil || qty < 0 {
				qty = 0
			}
			ans.Quantity = qty
			ans.Modifiers = append(ans.Modifiers, pricing.Modifier{
				QuestionID: q.ID,
				Kind:       pricing.PerUnit,
				Value:      *q.UnitRate,
			})

		default:
			// Text answers never price.
			continue
		}

		if len(ans.Modifiers) == 0 {
			continue
		}
		answers = append(answers, ans)
	}
	return answers, nil
}
