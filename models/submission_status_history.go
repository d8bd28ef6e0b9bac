package models

import "time"

// ActorRole records who drove a transition, as seen at the time of the
// change. Admin actors are recorded as editors since they act in an
// editorial capacity; system entries come from the portal itself.
type ActorRole string

const (
	ActorEditor ActorRole = "editor"
	ActorAuthor ActorRole = "author"
	ActorSystem ActorRole = "system"
)

// HistoryActorForRole maps an authenticated role to the actor label stored
// in the ledger.
func HistoryActorForRole(role Role) ActorRole {
	if role == RoleAuthor {
		return ActorAuthor
	}
	return ActorEditor
}

// SubmissionStatusHistory is one append-only audit entry. Rows are never
// updated or deleted after creation.
type SubmissionStatusHistory struct {
	HistoryID    int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	SubmissionID int       `gorm:"column:submission_id;index:idx_history_by_manuscript" json:"submission_id"`
	OldStatus    *Status   `gorm:"column:old_status;type:varchar(32)" json:"old_status"`
	NewStatus    Status    `gorm:"column:new_status;type:varchar(32)" json:"new_status"`
	ChangedBy    int       `gorm:"column:changed_by" json:"changed_by"`
	ActorRole    ActorRole `gorm:"column:actor_role;type:varchar(16)" json:"actor_role"`
	Note         string    `gorm:"column:note;type:text" json:"note"`
	AttachmentID *int      `gorm:"column:attachment_id" json:"attachment_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table for SubmissionStatusHistory.
func (SubmissionStatusHistory) TableName() string {
	return "submission_status_history"
}
