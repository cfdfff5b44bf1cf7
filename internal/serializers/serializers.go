package serializers

import (
	"time"

	"github.com/softdesk-dev/softdesk/internal/models"
)

type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

// ContributorResponse is a UserResponse plus the role the user holds in
// the project whose contributor list is being rendered.
type ContributorResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func NewContributorResponse(user models.User, role string) ContributorResponse {
	return ContributorResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      role,
	}
}

// ProjectListItem is the narrow shape used on the collection endpoint.
type ProjectListItem struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

func NewProjectListItem(project models.Project) ProjectListItem {
	return ProjectListItem{
		ID:    project.ID,
		Title: project.Title,
		Type:  project.Type,
	}
}

// ProjectDetail is the full single-project shape, including the ids of
// the project's contributors and issues.
type ProjectDetail struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	AuthorID     uint   `json:"author_id"`
	Contributors []uint `json:"contributors"`
	Issues       []uint `json:"issues"`
}

func NewProjectDetail(project models.Project, authorID uint, contributorIDs, issueIDs []uint) ProjectDetail {
	if contributorIDs == nil {
		contributorIDs = []uint{}
	}
	if issueIDs == nil {
		issueIDs = []uint{}
	}

	return ProjectDetail{
		ID:           project.ID,
		Title:        project.Title,
		Description:  project.Description,
		Type:         project.Type,
		AuthorID:     authorID,
		Contributors: contributorIDs,
		Issues:       issueIDs,
	}
}

type IssueResponse struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tag         string    `json:"tag"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	AuthorID    uint      `json:"author_id"`
	AssigneeID  uint      `json:"assignee_id"`
	CreatedTime time.Time `json:"created_time"`
}

func NewIssueResponse(issue models.Issue) IssueResponse {
	return IssueResponse{
		ID:          issue.ID,
		ProjectID:   issue.ProjectID,
		Title:       issue.Title,
		Description: issue.Description,
		Tag:         issue.Tag,
		Priority:    issue.Priority,
		Status:      issue.Status,
		AuthorID:    issue.AuthorID,
		AssigneeID:  issue.AssigneeID,
		CreatedTime: issue.CreatedTime,
	}
}

type CommentResponse struct {
	ID          uint      `json:"id"`
	IssueID     uint      `json:"issue_id"`
	Description string    `json:"description"`
	AuthorID    uint      `json:"author_id"`
	CreatedTime time.Time `json:"created_time"`
}

func NewCommentResponse(comment models.Comment) CommentResponse {
	return CommentResponse{
		ID:          comment.ID,
		IssueID:     comment.IssueID,
		Description: comment.Description,
		AuthorID:    comment.AuthorID,
		CreatedTime: comment.CreatedTime,
	}
}
