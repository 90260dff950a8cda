package interfaces

import (
	"context"

	"quotekit/internal/domain/entities"
)

// ILeadNotifier sends the "new lead" email to the company. Failures are
// logged and swallowed by the caller: a lead and its estimate stay valid
// even when the notification cannot be delivered.

type ILeadNotifier interface {
	NotifyNewLead(ctx context.Context, company entities.Company, lead entities.Lead) error
}
