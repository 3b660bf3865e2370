// Package audit emits structured audit entries for security-relevant
// actions. Entries go to the standard log stream tagged with a log type so
// downstream collectors can split them off.
package audit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mustafayildiz-m/iw-project/pkg/log"
)

// Audit action names.
const (
	ActionLogin         = "auth.login"
	ActionLoginFailed   = "auth.login_failed"
	ActionRegister      = "auth.register"
	ActionFollowUser    = "follow.user"
	ActionUnfollowUser  = "unfollow.user"
	ActionFollowScholar = "follow.scholar"
	ActionUnfollowSch   = "unfollow.scholar"
	ActionPostCreate    = "post.create"
	ActionPostUpdate    = "post.update"
	ActionPostDelete    = "post.delete"
)

// Recorder writes audit entries.
type Recorder struct {
	logger zerolog.Logger
}

// NewRecorder creates a Recorder on top of the given base logger.
func NewRecorder(base zerolog.Logger) *Recorder {
	return &Recorder{
		logger: base.With().Str(log.FieldLogType, log.LogTypeAudit).Logger(),
	}
}

// Record emits one audit entry. Extra fields come in as key/value pairs.
func (r *Recorder) Record(ctx context.Context, action string, userID uint, fields map[string]interface{}) {
	event := r.logger.Info().
		Str("action", action).
		Uint(log.FieldUserID, userID)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("audit")
}
