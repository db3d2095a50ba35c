// Package contacts is the read side of the CRM pipeline directory. The
// resolver only ever asks one question of it: which of a user's contacts
// sit in the needs-follow-up stage, longest-neglected first. Stage CRUD
// lives in the CRM system itself.
package contacts

import "time"

const StageNeedsFollowUp = "needs_follow_up"

type Contact struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	FullName       string    `json:"fullName"`
	PipelineStage  string    `json:"pipelineStage"`
	LastActivityAt time.Time `json:"lastActivityAt"`
	CreatedAt      time.Time `json:"createdAt"`
}
