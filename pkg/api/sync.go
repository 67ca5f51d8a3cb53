// Package api defines the relay wire protocol shared by the client and
// the relay server. One HTTP endpoint, POST, JSON body, with a function
// discriminator selecting the operation.
package api

import "github.com/SiloCityLabs/filameter.com-sub000/internal/models"

// Relay operations carried in SyncRequest.Function.
const (
	FunctionCreate    = "create"
	FunctionPull      = "pull"
	FunctionPush      = "push"
	FunctionTimestamp = "timestamp"
	FunctionForgot    = "forgot"
)

// Response status discriminators.
const (
	StatusSuccess = "success"
	StatusMessage = "message"
	StatusError   = "error"
)

// AppName identifies this application to the relay.
const AppName = "filameter"

// SyncRequest is the single request shape accepted by the relay.
// Email is set for create/forgot, Key for pull/push/timestamp, and
// Data only for push.
type SyncRequest struct {
	Data     *models.ExportEnvelope `json:"data,omitempty"`
	Function string                 `json:"function"`
	Email    string                 `json:"email,omitempty"`
	Key      string                 `json:"key,omitempty"`
	App      string                 `json:"app"`
}

// PullData is the payload of a successful pull. Token may differ from
// the submitted key when the relay has rotated or aliased it; the client
// must store Token as its key from then on.
type PullData struct {
	Data     models.ExportEnvelope `json:"data"`
	Token    string                `json:"token"`
	UserData string                `json:"userData"`
	KeyType  string                `json:"keyType"`
}

// SyncResponse is the union of all relay responses. Status selects
// which of the remaining fields are meaningful.
type SyncResponse struct {
	Data      *PullData `json:"data,omitempty"`
	Status    string    `json:"status"`
	Msg       string    `json:"msg,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp string    `json:"timestamp,omitempty"`
}
