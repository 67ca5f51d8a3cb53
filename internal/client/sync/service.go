// Package sync implements the sync orchestrator: the stateful core that
// decides push vs. pull vs. merge from timestamps, enforces the cooldown,
// and sequences relay calls against local store mutation.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/merge"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/relay"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/storage"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/validation"
)

// DefaultCooldownWindow is the minimum wall-clock interval between
// non-forced sync attempts.
const DefaultCooldownWindow = 5 * time.Second

// Action describes which data flow a sync operation performed.
type Action int

// Sync actions
const (
	// ActionNone means no relay data call was needed
	ActionNone Action = iota
	// ActionPush means local data was pushed, nothing pulled
	ActionPush
	// ActionPull means remote data was pulled and imported, nothing pushed
	ActionPull
	// ActionBidirectional means pull-merge-import followed by a push of
	// the merged result
	ActionBidirectional
)

// String returns a human-readable action name
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionPush:
		return "push"
	case ActionPull:
		return "pull"
	case ActionBidirectional:
		return "bidirectional"
	default:
		return "unknown"
	}
}

// Outcome reports what a sync-triggering operation did.
type Outcome struct {
	Action Action
	// Pulled is the number of records received from the relay
	Pulled int
	// Pushed is the number of records sent to the relay
	Pushed int
	// Overwritten is the number of local records replaced by their
	// remote version during the merge
	Overwritten int
	// UpToDate is true when the no-op branch was taken
	UpToDate bool
}

// Status is a read-only snapshot of the sync state for presentation.
type Status struct {
	LastSynced         time.Time
	LastModified       time.Time
	Email              string
	SyncKey            string
	AccountType        string
	State              models.IdentityState
	CooldownRemaining  time.Duration
	HasUnsyncedChanges bool
}

// Service is the sync orchestrator. Dependencies are injected; there is
// no ambient global state. Not reentrant: one sync operation may be in
// flight at a time, concurrent triggers are rejected with
// ErrSyncInProgress because the merge engine assumes one consistent
// local export per cycle.
type Service struct {
	store    storage.SpoolStore
	settings storage.SettingsStore
	relay    relay.Client
	logger   *slog.Logger
	now      func() time.Time
	window   time.Duration

	mu       stdsync.Mutex
	inFlight bool
}

// Option configures a Service.
type Option func(*Service)

// WithCooldownWindow overrides the cooldown window.
func WithCooldownWindow(d time.Duration) Option {
	return func(s *Service) { s.window = d }
}

// WithClock overrides the wall clock, used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a sync orchestrator.
func NewService(store storage.SpoolStore, settings storage.SettingsStore, relayClient relay.Client, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:    store,
		settings: settings,
		relay:    relayClient,
		logger:   logger,
		now:      time.Now,
		window:   DefaultCooldownWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// acquire claims the single in-flight slot.
func (s *Service) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrSyncInProgress
	}
	s.inFlight = true
	return nil
}

func (s *Service) release() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// CreateSyncIdentity registers intent to sync under an email address.
// On relay success the identity transitions to pending verification; the
// relay sends the key out-of-band and the returned message tells the
// user to look for it.
func (s *Service) CreateSyncIdentity(ctx context.Context, email string) (string, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return "", &InvalidInputError{Err: err}
	}

	msg, err := s.relay.Create(ctx, email)
	if err != nil {
		return "", err
	}

	identity := &models.SyncIdentity{
		Email:             email,
		NeedsVerification: true,
	}
	if err := s.settings.SaveIdentity(ctx, identity); err != nil {
		return "", fmt.Errorf("failed to persist sync identity: %w", err)
	}

	s.logger.Info("sync identity created, verification pending", "email", email)
	return msg, nil
}

// AdoptExistingKey activates sync with a key the user already holds
// (from the verification email or another device). On success the
// possibly rotated key is persisted and one full bidirectional sync runs
// immediately so the device is consistent before first use.
func (s *Service) AdoptExistingKey(ctx context.Context, key string) (*Outcome, error) {
	if err := validation.ValidateSyncKey(key); err != nil {
		return nil, &InvalidInputError{Err: err}
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	pulled, err := s.relay.Pull(ctx, key)
	if err != nil {
		// Identity state stays as it was
		return nil, err
	}

	s.logger.Info("sync key adopted", "account_type", pulled.AccountType)
	return s.completeBidirectional(ctx, pulled)
}

// CheckForUpdates is the routine "sync now" action. It is rejected
// inside the cooldown window; otherwise a cheap timestamp call decides
// between a full bidirectional sync, a push of local edits, or a no-op.
func (s *Service) CheckForUpdates(ctx context.Context) (*Outcome, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	identity, err := s.engagedIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if remaining, err := s.cooldownRemaining(ctx); err != nil {
		return nil, err
	} else if remaining > 0 {
		return nil, &CooldownError{Remaining: remaining}
	}

	remoteTS, err := s.relay.Timestamp(ctx, identity.SyncKey)
	if err != nil {
		return nil, err
	}

	lastModified, err := s.settings.GetLastModified(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last-modified marker: %w", err)
	}

	switch {
	case remoteTS.After(identity.LastSynced):
		// Remote has data we lack
		s.logger.Info("remote is newer, running bidirectional sync",
			"remote_timestamp", remoteTS, "last_synced", identity.LastSynced)
		pulled, err := s.relay.Pull(ctx, identity.SyncKey)
		if err != nil {
			return nil, err
		}
		return s.completeBidirectional(ctx, pulled)

	case lastModified.After(identity.LastSynced):
		// We have unsynced local edits, remote has nothing new
		s.logger.Info("local changes pending, pushing",
			"last_modified", lastModified, "last_synced", identity.LastSynced)
		return s.pushLocal(ctx, identity)

	default:
		// Up to date. The cooldown still starts so the relay is not
		// hammered when nothing changes.
		if err := s.settings.SetCooldownStamp(ctx, s.now()); err != nil {
			return nil, fmt.Errorf("failed to start cooldown: %w", err)
		}
		s.logger.Info("already up to date")
		return &Outcome{Action: ActionNone, UpToDate: true}, nil
	}
}

// ForcePush overwrites the remote snapshot with the current local
// export, bypassing the cooldown and the timestamp comparison.
func (s *Service) ForcePush(ctx context.Context) (*Outcome, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	identity, err := s.engagedIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return s.pushLocal(ctx, identity)
}

// ForcePull pulls, merges, and imports the remote snapshot, bypassing
// the cooldown and the timestamp comparison. Nothing is pushed.
func (s *Service) ForcePull(ctx context.Context) (*Outcome, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	identity, err := s.engagedIdentity(ctx)
	if err != nil {
		return nil, err
	}

	pulled, err := s.relay.Pull(ctx, identity.SyncKey)
	if err != nil {
		return nil, err
	}

	merged, overwritten, err := s.importPulled(ctx, pulled)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Action:      ActionPull,
		Pulled:      len(pulled.Envelope.Regular),
		Overwritten: overwritten,
	}
	if importErr := merged.partialError(); importErr != nil {
		return outcome, importErr
	}

	s.logger.Info("pull completed", "pulled", outcome.Pulled, "overwritten", outcome.Overwritten)
	return outcome, nil
}

// RemoveSync clears the identity and both timestamps and returns the
// device to the unconfigured state. Not reversible, so the caller must
// supply a confirmation capability that is consulted first.
func (s *Service) RemoveSync(ctx context.Context, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrRemovalNotConfirmed
	}

	if err := s.settings.ClearSyncState(ctx); err != nil {
		return fmt.Errorf("failed to clear sync state: %w", err)
	}

	s.logger.Info("sync removed")
	return nil
}

// RequestKeyRecovery asks the relay to email existing keys for an address.
func (s *Service) RequestKeyRecovery(ctx context.Context, email string) (string, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return "", &InvalidInputError{Err: err}
	}
	return s.relay.Forgot(ctx, email)
}

// UpdateLastModified stamps the local modification marker. Every local
// mutation path outside of sync calls this; it is the signal that drives
// the push-only branch of CheckForUpdates.
func (s *Service) UpdateLastModified(ctx context.Context) error {
	if err := s.settings.SetLastModified(ctx, s.now()); err != nil {
		return fmt.Errorf("failed to stamp last-modified marker: %w", err)
	}
	return nil
}

// Status reports the current sync state for presentation.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	status := &Status{State: models.IdentityNone}

	identity, err := s.settings.GetIdentity(ctx)
	switch {
	case err == nil:
		status.State = identity.State()
		status.Email = identity.Email
		status.SyncKey = identity.SyncKey
		status.AccountType = identity.AccountType
		status.LastSynced = identity.LastSynced
	case errors.Is(err, storage.ErrIdentityNotFound):
		// leave the zero status
	default:
		return nil, fmt.Errorf("failed to read sync identity: %w", err)
	}

	lastModified, err := s.settings.GetLastModified(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last-modified marker: %w", err)
	}
	status.LastModified = lastModified
	status.HasUnsyncedChanges = lastModified.After(status.LastSynced)

	remaining, err := s.cooldownRemaining(ctx)
	if err != nil {
		return nil, err
	}
	status.CooldownRemaining = remaining

	return status, nil
}

// engagedIdentity loads the identity and requires it to be engaged.
func (s *Service) engagedIdentity(ctx context.Context) (*models.SyncIdentity, error) {
	identity, err := s.settings.GetIdentity(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrIdentityNotFound) {
			return nil, ErrNoIdentity
		}
		return nil, fmt.Errorf("failed to read sync identity: %w", err)
	}

	switch identity.State() {
	case models.IdentityEngaged:
		return identity, nil
	case models.IdentityPendingVerification:
		return nil, ErrVerificationPending
	case models.IdentityNone:
		return nil, ErrNoIdentity
	default:
		return nil, ErrNoIdentity
	}
}

// cooldownRemaining derives the remaining cooldown from the persisted
// stamp. Zero or negative means the window is open.
func (s *Service) cooldownRemaining(ctx context.Context) (time.Duration, error) {
	stamp, err := s.settings.GetCooldownStamp(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read cooldown stamp: %w", err)
	}
	if stamp.IsZero() {
		return 0, nil
	}
	remaining := stamp.Add(s.window).Sub(s.now())
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

// completeBidirectional finishes a sync cycle from an already-completed
// pull: merge, import locally, then push the merged result. The pull is
// always imported before the push is issued, so a push never transmits
// pre-merge stale data.
func (s *Service) completeBidirectional(ctx context.Context, pulled *relay.PullResult) (*Outcome, error) {
	merged, overwritten, err := s.importPulled(ctx, pulled)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Action:      ActionBidirectional,
		Pulled:      len(pulled.Envelope.Regular),
		Overwritten: overwritten,
	}

	if importErr := merged.partialError(); importErr != nil {
		// Pull bookkeeping already advanced; report partial success
		return outcome, importErr
	}

	stripped := merged.envelope.StripRevisions()
	if err := s.relay.Push(ctx, pulled.Token, &stripped); err != nil {
		// A rejected push never advances lastSynced past the pull stamp
		return outcome, err
	}
	outcome.Pushed = len(stripped.Regular)

	if err := s.stampSynced(ctx); err != nil {
		return outcome, err
	}

	s.logger.Info("bidirectional sync completed",
		"pulled", outcome.Pulled,
		"pushed", outcome.Pushed,
		"overwritten", outcome.Overwritten)
	return outcome, nil
}

// mergeResult carries the merged envelope plus the import error, so
// callers can distinguish partial success from total failure.
type mergeResult struct {
	envelope  models.ExportEnvelope
	importErr error
}

func (m *mergeResult) partialError() error {
	if m.importErr != nil {
		return &PartialSyncError{Err: m.importErr}
	}
	return nil
}

// importPulled merges the pulled snapshot with the local export and
// imports the result. lastSynced is stamped after the relay confirmed
// the pull but before the local import completes; if the import then
// fails the remote-side bookkeeping is already ahead. That ordering is
// inherited behavior, kept deliberately (see DESIGN.md).
func (s *Service) importPulled(ctx context.Context, pulled *relay.PullResult) (*mergeResult, int, error) {
	localExport, err := s.store.ExportAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	merged := merge.Merge(localExport, &pulled.Envelope)
	overwritten := countShared(localExport, &pulled.Envelope)

	// Persist the (possibly rotated) key and stamp lastSynced: the relay
	// confirmed the pull.
	identity := &models.SyncIdentity{
		SyncKey:     pulled.Token,
		Email:       pulled.Email,
		AccountType: pulled.AccountType,
		LastSynced:  s.now(),
	}
	if err := s.settings.SaveIdentity(ctx, identity); err != nil {
		return nil, 0, fmt.Errorf("failed to persist sync identity: %w", err)
	}
	if err := s.settings.SetCooldownStamp(ctx, s.now()); err != nil {
		return nil, 0, fmt.Errorf("failed to start cooldown: %w", err)
	}

	result := &mergeResult{envelope: merged}
	if _, err := s.store.BulkImport(ctx, &merged); err != nil {
		result.importErr = err
	}
	return result, overwritten, nil
}

// pushLocal pushes the current local export and, on relay acceptance,
// advances lastSynced and starts the cooldown.
func (s *Service) pushLocal(ctx context.Context, identity *models.SyncIdentity) (*Outcome, error) {
	envelope, err := s.store.ExportAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.relay.Push(ctx, identity.SyncKey, envelope); err != nil {
		// lastSynced must not advance on a rejected push
		return nil, err
	}

	if err := s.stampSynced(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("push completed", "pushed", len(envelope.Regular))
	return &Outcome{Action: ActionPush, Pushed: len(envelope.Regular)}, nil
}

// stampSynced advances lastSynced on the stored identity and starts the
// cooldown window.
func (s *Service) stampSynced(ctx context.Context) error {
	identity, err := s.settings.GetIdentity(ctx)
	if err != nil {
		return fmt.Errorf("failed to read sync identity: %w", err)
	}
	identity.LastSynced = s.now()
	if err := s.settings.SaveIdentity(ctx, identity); err != nil {
		return fmt.Errorf("failed to persist lastSynced: %w", err)
	}
	if err := s.settings.SetCooldownStamp(ctx, s.now()); err != nil {
		return fmt.Errorf("failed to start cooldown: %w", err)
	}
	return nil
}

// countShared counts ids present on both sides, i.e. local records the
// remote version overwrote.
func countShared(local, remote *models.ExportEnvelope) int {
	ids := make(map[string]bool, len(local.Regular))
	for i := range local.Regular {
		ids[local.Regular[i].ID] = true
	}
	shared := 0
	for i := range remote.Regular {
		if ids[remote.Regular[i].ID] {
			shared++
		}
	}
	return shared
}
