package authz

import (
	"github.com/softdesk-dev/softdesk/internal/models"
	"github.com/softdesk-dev/softdesk/internal/resolver"
)

// Action names one operation on one resource kind. The router picks the
// action when it binds the route, so a handler never has to infer what
// it is operating on from which identifiers happen to be present.
type Action int

const (
	ActionRetrieveProject Action = iota
	ActionUpdateProject
	ActionDeleteProject
	ActionListContributors
	ActionAddContributor
	ActionRemoveContributor
	ActionListIssues
	ActionCreateIssue
	ActionRetrieveIssue
	ActionUpdateIssue
	ActionDeleteIssue
	ActionListComments
	ActionCreateComment
	ActionRetrieveComment
	ActionUpdateComment
	ActionDeleteComment
)

// Allowed decides whether the actor may perform the action on the
// resolved resources. The resolver has already established project
// membership, so the only question left is whether the action needs
// author rights on top of it.
func Allowed(action Action, rc resolver.Context) bool {
	switch action {
	case ActionUpdateProject, ActionDeleteProject:
		// Exactly one contributor per project holds the Author role, so
		// role == Author is the same check as actor == project author.
		return rc.ActorRole == models.RoleAuthor

	case ActionUpdateIssue, ActionDeleteIssue:
		return rc.Issue != nil && rc.Issue.AuthorID == rc.Actor.ID

	case ActionUpdateComment, ActionDeleteComment:
		return rc.Comment != nil && rc.Comment.AuthorID == rc.Actor.ID

	default:
		// Reads, listings, creations and contributor management are
		// open to every contributor.
		return true
	}
}

// CanRemoveContributor guards the one link that must never be removed:
// deleting the Author link would leave the project with no author.
func CanRemoveContributor(link models.Contributor) bool {
	return link.Role != models.RoleAuthor
}
