package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/mailer"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/storage"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/validation"
	"github.com/SiloCityLabs/filameter.com-sub000/pkg/api"
)

// SyncHandler serves the single sync endpoint. All five operations
// arrive as POSTs distinguished by the function field; HTTP status is
// 200 for anything the relay could process, including application
// errors, which travel in the body.
type SyncHandler struct {
	accounts  storage.AccountStorage
	snapshots storage.SnapshotStorage
	mailer    mailer.Mailer
	logger    *slog.Logger
	now       func() time.Time
	newKey    func() (string, error)
}

// NewSyncHandler creates the sync endpoint handler.
func NewSyncHandler(accounts storage.AccountStorage, snapshots storage.SnapshotStorage, m mailer.Mailer, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		accounts:  accounts,
		snapshots: snapshots,
		mailer:    m,
		logger:    logger,
		now:       time.Now,
		newKey:    generateSyncKey,
	}
}

// Sync handles POST /api/v1/sync.
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req api.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "invalid request body")
		return
	}

	if req.App != api.AppName {
		h.writeError(w, "unknown app")
		return
	}

	switch req.Function {
	case api.FunctionCreate:
		h.handleCreate(w, r, &req)
	case api.FunctionPull:
		h.handlePull(w, r, &req)
	case api.FunctionPush:
		h.handlePush(w, r, &req)
	case api.FunctionTimestamp:
		h.handleTimestamp(w, r, &req)
	case api.FunctionForgot:
		h.handleForgot(w, r, &req)
	default:
		h.writeError(w, fmt.Sprintf("unknown function: %s", req.Function))
	}
}

func (h *SyncHandler) handleCreate(w http.ResponseWriter, r *http.Request, req *api.SyncRequest) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		h.writeError(w, "invalid email address")
		return
	}

	key, err := h.newKey()
	if err != nil {
		h.logger.Error("failed to generate sync key", "error", err)
		h.writeError(w, "internal error, try again later")
		return
	}

	account := &models.SyncAccount{
		Key:         key,
		Email:       req.Email,
		AccountType: models.AccountTypeFree,
		CreatedAt:   h.now(),
	}
	if err := h.accounts.CreateAccount(r.Context(), account); err != nil {
		h.logger.Error("failed to create account", "error", err)
		h.writeError(w, "internal error, try again later")
		return
	}

	if err := h.mailer.SendSyncKey(r.Context(), req.Email, key); err != nil {
		h.logger.Error("failed to mail sync key", "email", req.Email, "error", err)
		h.writeError(w, "could not send the key email, try again later")
		return
	}

	h.logger.Info("account created", "email", req.Email)
	h.writeMessage(w, "A sync key has been sent to your email address.")
}

func (h *SyncHandler) handlePull(w http.ResponseWriter, r *http.Request, req *api.SyncRequest) {
	account, err := h.resolveAccount(w, r, req.Key)
	if account == nil {
		if err != nil {
			h.logger.Error("failed to resolve account", "error", err)
		}
		return
	}

	// Possession of the mailed key is the verification
	if !account.Verified {
		if err := h.accounts.MarkVerified(r.Context(), account.Key); err != nil {
			h.logger.Error("failed to mark account verified", "error", err)
		}
	}

	envelope := models.ExportEnvelope{}
	snapshot, err := h.snapshots.GetSnapshot(r.Context(), account.Key)
	switch {
	case err == nil:
		if err := json.Unmarshal(snapshot.Data, &envelope); err != nil {
			h.logger.Error("stored snapshot is unreadable", "key_prefix", keyPrefix(account.Key), "error", err)
			h.writeError(w, "stored data is unreadable, push from a device that has it")
			return
		}
	case errors.Is(err, storage.ErrSnapshotNotFound):
		// first pull on a fresh account, nothing stored yet
	default:
		h.logger.Error("failed to load snapshot", "error", err)
		h.writeError(w, "internal error, try again later")
		return
	}

	h.writeJSON(w, api.SyncResponse{
		Status: api.StatusSuccess,
		Data: &api.PullData{
			Data:     envelope,
			Token:    account.Key,
			UserData: account.Email,
			KeyType:  account.AccountType,
		},
	})
}

func (h *SyncHandler) handlePush(w http.ResponseWriter, r *http.Request, req *api.SyncRequest) {
	account, err := h.resolveAccount(w, r, req.Key)
	if account == nil {
		if err != nil {
			h.logger.Error("failed to resolve account", "error", err)
		}
		return
	}

	if req.Data == nil {
		h.writeError(w, "missing data")
		return
	}

	data, err := json.Marshal(req.Data)
	if err != nil {
		h.writeError(w, "invalid data")
		return
	}

	if err := h.snapshots.SaveSnapshot(r.Context(), account.Key, data, h.now()); err != nil {
		h.logger.Error("failed to save snapshot", "error", err)
		h.writeError(w, "internal error, try again later")
		return
	}

	h.logger.Info("snapshot stored", "key_prefix", keyPrefix(account.Key), "spools", len(req.Data.Regular))
	h.writeJSON(w, api.SyncResponse{Status: api.StatusSuccess})
}

func (h *SyncHandler) handleTimestamp(w http.ResponseWriter, r *http.Request, req *api.SyncRequest) {
	account, err := h.resolveAccount(w, r, req.Key)
	if account == nil {
		if err != nil {
			h.logger.Error("failed to resolve account", "error", err)
		}
		return
	}

	ts, err := h.snapshots.GetTimestamp(r.Context(), account.Key)
	if err != nil {
		h.logger.Error("failed to load snapshot timestamp", "error", err)
		h.writeError(w, "internal error, try again later")
		return
	}

	h.writeJSON(w, api.SyncResponse{
		Status:    api.StatusSuccess,
		Timestamp: ts.UTC().Format(time.RFC3339),
	})
}

// handleForgot always answers with the same neutral message so the
// endpoint cannot be used to probe which addresses are registered.
func (h *SyncHandler) handleForgot(w http.ResponseWriter, r *http.Request, req *api.SyncRequest) {
	neutral := "If this address is registered, its sync keys have been emailed to it."

	if err := validation.ValidateEmail(req.Email); err != nil {
		h.writeMessage(w, neutral)
		return
	}

	accounts, err := h.accounts.GetAccountsByEmail(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("failed to look up accounts", "error", err)
		h.writeMessage(w, neutral)
		return
	}

	if len(accounts) > 0 {
		keys := make([]string, 0, len(accounts))
		for _, account := range accounts {
			keys = append(keys, account.Key)
		}
		if err := h.mailer.SendKeyRecovery(r.Context(), req.Email, keys); err != nil {
			h.logger.Error("failed to mail key recovery", "email", req.Email, "error", err)
		}
	}

	h.writeMessage(w, neutral)
}

// resolveAccount looks up the account for a key or alias, writing the
// error response itself when the key is unknown. A nil account with a
// nil error means the response is already written.
func (h *SyncHandler) resolveAccount(w http.ResponseWriter, r *http.Request, key string) (*models.SyncAccount, error) {
	if key == "" {
		h.writeError(w, "missing key")
		return nil, nil
	}

	account, err := h.accounts.ResolveAccount(r.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			h.writeError(w, "key not found")
			return nil, nil
		}
		h.writeError(w, "internal error, try again later")
		return nil, err
	}
	return account, nil
}

func (h *SyncHandler) writeJSON(w http.ResponseWriter, resp api.SyncResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *SyncHandler) writeMessage(w http.ResponseWriter, msg string) {
	h.writeJSON(w, api.SyncResponse{Status: api.StatusMessage, Msg: msg})
}

func (h *SyncHandler) writeError(w http.ResponseWriter, msg string) {
	h.writeJSON(w, api.SyncResponse{Status: api.StatusError, Error: msg})
}

// generateSyncKey returns a 24-character URL-safe key.
func generateSyncKey() (string, error) {
	raw := make([]byte, 18)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// keyPrefix truncates a key for logging. Full keys never hit the log.
func keyPrefix(key string) string {
	if len(key) <= 6 {
		return key
	}
	return key[:6] + "..."
}
