package history

import "time"

// Exchange is one completed invocation: the outbound prompt and the delivered
// reply. Write-only bookkeeping; conversations themselves stay in memory.
type Exchange struct {
	ID           int64     `json:"id"`
	InvocationID string    `json:"invocation_id"`
	AppID        string    `json:"app_id"`
	Action       string    `json:"action"`
	Prompt       string    `json:"prompt"`
	Reply        string    `json:"reply"`
	CreatedAt    time.Time `json:"created_at"`
}
