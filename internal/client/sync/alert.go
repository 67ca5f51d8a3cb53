package sync

import (
	"errors"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/relay"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/storage"
)

// AlertVariant classifies a user-visible alert.
type AlertVariant string

// Alert variants
const (
	AlertInfo    AlertVariant = "info"
	AlertWarning AlertVariant = "warning"
	AlertError   AlertVariant = "error"
)

// Alert is the single user-visible shape every orchestrator failure is
// folded into. Nothing propagates past the orchestrator boundary raw.
type Alert struct {
	Variant AlertVariant
	Message string
}

// AlertFromError classifies an orchestrator error for presentation.
func AlertFromError(err error) Alert {
	var (
		cooldownErr  *CooldownError
		inputErr     *InvalidInputError
		transportErr *relay.TransportError
		relayErr     *relay.RelayError
		partialErr   *PartialSyncError
	)

	switch {
	case errors.As(err, &cooldownErr):
		return Alert{Variant: AlertInfo, Message: cooldownErr.Error()}
	case errors.As(err, &inputErr):
		return Alert{Variant: AlertWarning, Message: inputErr.Error()}
	case errors.As(err, &transportErr):
		return Alert{Variant: AlertError, Message: "could not reach the sync relay, check your connection and try again"}
	case errors.As(err, &relayErr):
		// Relay messages pass through verbatim
		return Alert{Variant: AlertError, Message: relayErr.Message}
	case errors.As(err, &partialErr):
		return Alert{Variant: AlertWarning, Message: partialErr.Error()}
	case errors.Is(err, storage.ErrStoreUnavailable):
		return Alert{Variant: AlertError, Message: "the local database is unavailable"}
	case errors.Is(err, ErrSyncInProgress),
		errors.Is(err, ErrVerificationPending),
		errors.Is(err, ErrNoIdentity):
		return Alert{Variant: AlertInfo, Message: err.Error()}
	default:
		return Alert{Variant: AlertError, Message: err.Error()}
	}
}
