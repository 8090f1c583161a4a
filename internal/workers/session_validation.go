package workers

import "context"

// SessionValidationName is the [Result.Worker] of the session validation.
const SessionValidationName = "session-validation"

// SessionStarter is implemented by *session.Holder.
type SessionStarter interface {
	OnAppStart(ctx context.Context) error
}

type sessionValidationWorker struct {
	session SessionStarter
}

// NewSessionValidationWorker validates the persisted token once at startup.
// The UI keeps showing the cached session until the result arrives.
func NewSessionValidationWorker(session SessionStarter) Worker {
	return &sessionValidationWorker{session: session}
}

func (s *sessionValidationWorker) Name() string {
	return SessionValidationName
}

func (s *sessionValidationWorker) Run(ctx context.Context) error {
	return s.session.OnAppStart(ctx)
}
