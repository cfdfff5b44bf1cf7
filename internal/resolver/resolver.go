package resolver

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/softdesk-dev/softdesk/internal/middleware"
	"github.com/softdesk-dev/softdesk/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound covers both a genuinely absent resource and a project the
// actor is not a contributor of. Collapsing the two means a non-member
// cannot probe for the existence of projects they have no access to.
var ErrNotFound = errors.New("resource not found")

// Params are the raw path identifiers of a request. ProjectID is always
// present; the rest depend on how deep the route nests.
type Params struct {
	ProjectID    string
	IssueID      string
	CommentID    string
	TargetUserID string
}

// ParamsFrom pulls the identifiers out of the gin route parameters.
func ParamsFrom(ctx *gin.Context) Params {
	return Params{
		ProjectID:    ctx.Param("project_id"),
		IssueID:      ctx.Param("issue_id"),
		CommentID:    ctx.Param("comment_id"),
		TargetUserID: ctx.Param("user_id"),
	}
}

// Context is the resolved ancestor chain for one request. It is built
// once by Resolve and passed by value into the handler; handlers never
// mutate it.
type Context struct {
	Actor     middleware.AuthenticatedUser
	ActorRole string
	Project   models.Project

	Issue      *models.Issue
	Comment    *models.Comment
	TargetUser *models.User
}

// Resolve loads the project and, when the route names them, the issue,
// comment and target user. The project lookup requires the actor to be
// a contributor; everything below it is scoped to its parent. The first
// failing step wins and nothing is written.
func Resolve(gdb *gorm.DB, actor middleware.AuthenticatedUser, params Params) (Context, error) {
	rc := Context{Actor: actor}

	projectID, err := parseID(params.ProjectID)
	if err != nil {
		return rc, ErrNotFound
	}

	var link models.Contributor

	if err := gdb.Where("project_id = ? AND user_id = ?", projectID, actor.ID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rc, ErrNotFound
		}
		return rc, err
	}

	rc.ActorRole = link.Role

	if err := gdb.First(&rc.Project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rc, ErrNotFound
		}
		return rc, err
	}

	if params.IssueID != "" {
		issueID, err := parseID(params.IssueID)
		if err != nil {
			return rc, ErrNotFound
		}

		var issue models.Issue

		if err := gdb.Where("id = ? AND project_id = ?", issueID, rc.Project.ID).First(&issue).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return rc, ErrNotFound
			}
			return rc, err
		}

		rc.Issue = &issue
	}

	if params.CommentID != "" {
		// A comment can only be named underneath its issue.
		if rc.Issue == nil {
			return rc, ErrNotFound
		}

		commentID, err := parseID(params.CommentID)
		if err != nil {
			return rc, ErrNotFound
		}

		var comment models.Comment

		if err := gdb.Where("id = ? AND issue_id = ?", commentID, rc.Issue.ID).First(&comment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return rc, ErrNotFound
			}
			return rc, err
		}

		rc.Comment = &comment
	}

	if params.TargetUserID != "" {
		targetID, err := parseID(params.TargetUserID)
		if err != nil {
			return rc, ErrNotFound
		}

		// Deliberately not scoped to project membership: the target of
		// an add/remove-contributor call may not be a member yet.
		var user models.User

		if err := gdb.First(&user, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return rc, ErrNotFound
			}
			return rc, err
		}

		rc.TargetUser = &user
	}

	return rc, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
