package services

import "journal-portal-api/models"

// Action enumerates every permission-gated operation in the portal. All
// authorization decisions go through CanPerform; handlers never re-derive
// role checks on their own.
type Action string

const (
	ActionCreateSubmission   Action = "submission:create"
	ActionResubmitCorrection Action = "submission:resubmit"
	ActionDecideSubmission   Action = "submission:decide"
	ActionRecordReview       Action = "review:record"
	ActionPublishArticle     Action = "article:publish"
	ActionManageIssues       Action = "issue:manage"
	ActionPublishIssue       Action = "issue:publish"
	ActionDeleteIssue        Action = "issue:delete"
	ActionManageTemplates    Action = "template:manage"
	ActionChangeUserRole     Action = "user:change_role"
)

// minimumRole maps each action to the set of roles allowed to perform it.
var minimumRole = map[Action]map[models.Role]bool{
	ActionCreateSubmission: {
		models.RoleAuthor: true, models.RoleEditor: true, models.RoleAdmin: true,
	},
	// Ownership of the submission is enforced by the lifecycle engine;
	// the guard only settles the role question.
	ActionResubmitCorrection: {
		models.RoleAuthor: true, models.RoleEditor: true, models.RoleAdmin: true,
	},
	ActionDecideSubmission: {
		models.RoleEditor: true, models.RoleAdmin: true,
	},
	ActionRecordReview: {
		models.RoleEditor: true, models.RoleAdmin: true,
	},
	ActionPublishArticle: {
		models.RoleAdmin: true,
	},
	ActionManageIssues: {
		models.RoleEditor: true, models.RoleAdmin: true,
	},
	ActionPublishIssue: {
		models.RoleAdmin: true,
	},
	ActionDeleteIssue: {
		models.RoleAdmin: true,
	},
	ActionManageTemplates: {
		models.RoleEditor: true, models.RoleAdmin: true,
	},
	ActionChangeUserRole: {
		models.RoleAdmin: true,
	},
}

// CanPerform is a pure authorization predicate: no lookups, no side effects.
func CanPerform(role models.Role, action Action) bool {
	allowed, ok := minimumRole[action]
	if !ok {
		return false
	}
	return allowed[role]
}

// transitionAction classifies a target status into the action that gates it.
func transitionAction(target models.Status) Action {
	switch target {
	case models.StatusCorrectionSubmitted:
		return ActionResubmitCorrection
	case models.StatusPublished, models.StatusUnpublished:
		return ActionPublishArticle
	default:
		return ActionDecideSubmission
	}
}
