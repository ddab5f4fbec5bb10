package runtime

import (
	"context"
	stderrors "errors"
	"list-sync/contract"
	"list-sync/domain"
	"list-sync/errors"
	"log/slog"
)

// AudienceResolver answers "which users may see events about this list right now?".
// It never fails: every problem resolves to an empty audience.
type AudienceResolver struct {
	log   *slog.Logger
	store contract.MembershipStore
}

func NewAudienceResolver(log *slog.Logger, store contract.MembershipStore) *AudienceResolver {
	return &AudienceResolver{log: log, store: store}
}

// Resolve uses the snapshot verbatim when one is given (non-nil), without touching storage.
// Otherwise it loads the list's current members.
func (r *AudienceResolver) Resolve(ctx context.Context, listID domain.ListID, snapshot []domain.UserID) domain.Audience {
	if snapshot != nil {
		return domain.NewAudience(snapshot)
	}

	if err := domain.ValidateListID(listID); err != nil {
		r.log.Warn("Audience resolution skipped", "list_id", listID, "error", err)
		return domain.Audience{}
	}

	ids, err := r.store.LoadCurrentMemberIDs(ctx, listID)
	switch {
	case stderrors.Is(err, errors.ErrListNotFound):
		r.log.Debug("List no longer exists, empty audience", "list_id", listID)
		return domain.Audience{}
	case err != nil:
		r.log.Error("Loading list members failed", "list_id", listID, "error", err)
		return domain.Audience{}
	}
	return domain.NewAudience(ids)
}
