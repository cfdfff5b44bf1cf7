package resolver

import (
	"os"
	"strconv"
	"testing"

	"github.com/softdesk-dev/softdesk/internal/middleware"
	"github.com/softdesk-dev/softdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates a fresh sqlite database and seeds two users, a
// project owned by the first, an issue and a comment on it.
func setupTestDB(t *testing.T) (*gorm.DB, models.User, models.User, models.Project, models.Issue, models.Comment) {
	_ = os.Remove("test_resolver.db")

	gdb, err := gorm.Open(sqlite.Open("test_resolver.db"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Contributor{},
		&models.Issue{},
		&models.Comment{},
	)
	assert.NoError(t, err)

	t.Cleanup(func() { _ = os.Remove("test_resolver.db") })

	member := models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "x"}
	outsider := models.User{FirstName: "Eve", LastName: "Mallory", Email: "eve@example.com", PasswordHash: "x"}
	assert.NoError(t, gdb.Create(&member).Error)
	assert.NoError(t, gdb.Create(&outsider).Error)

	project := models.Project{Title: "Tracker", Type: models.ProjectTypeBackend}
	assert.NoError(t, gdb.Create(&project).Error)
	assert.NoError(t, gdb.Create(&models.Contributor{
		UserID:    member.ID,
		ProjectID: project.ID,
		Role:      models.RoleAuthor,
	}).Error)

	issue := models.Issue{
		ProjectID:  project.ID,
		Title:      "Crash on save",
		Tag:        models.IssueTagBug,
		Priority:   models.IssuePriorityHigh,
		Status:     models.IssueStatusToDo,
		AuthorID:   member.ID,
		AssigneeID: member.ID,
	}
	assert.NoError(t, gdb.Create(&issue).Error)

	comment := models.Comment{IssueID: issue.ID, Description: "Reproduced", AuthorID: member.ID}
	assert.NoError(t, gdb.Create(&comment).Error)

	return gdb, member, outsider, project, issue, comment
}

func actorFor(user models.User) middleware.AuthenticatedUser {
	return middleware.AuthenticatedUser{ID: user.ID, Email: user.Email}
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestResolveProjectForMember(t *testing.T) {
	gdb, member, _, project, _, _ := setupTestDB(t)

	rc, err := Resolve(gdb, actorFor(member), Params{ProjectID: idString(project.ID)})

	assert.NoError(t, err)
	assert.Equal(t, project.ID, rc.Project.ID)
	assert.Equal(t, models.RoleAuthor, rc.ActorRole)
	assert.Nil(t, rc.Issue)
	assert.Nil(t, rc.Comment)
	assert.Nil(t, rc.TargetUser)
}

func TestNonMemberSeesNotFound(t *testing.T) {
	gdb, _, outsider, project, _, _ := setupTestDB(t)

	// An existing project the actor is not part of and a project that
	// does not exist at all must be indistinguishable.
	_, err := Resolve(gdb, actorFor(outsider), Params{ProjectID: idString(project.ID)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Resolve(gdb, actorFor(outsider), Params{ProjectID: "424242"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveNestedIssueAndComment(t *testing.T) {
	gdb, member, _, project, issue, comment := setupTestDB(t)

	rc, err := Resolve(gdb, actorFor(member), Params{
		ProjectID: idString(project.ID),
		IssueID:   idString(issue.ID),
		CommentID: idString(comment.ID),
	})

	assert.NoError(t, err)
	assert.Equal(t, issue.ID, rc.Issue.ID)
	assert.Equal(t, comment.ID, rc.Comment.ID)
}

func TestIssueScopedToProject(t *testing.T) {
	gdb, member, _, _, issue, _ := setupTestDB(t)

	// Second project owned by the same user; the issue belongs to the
	// first one and must not resolve underneath the second.
	other := models.Project{Title: "Other", Type: models.ProjectTypeAndroid}
	assert.NoError(t, gdb.Create(&other).Error)
	assert.NoError(t, gdb.Create(&models.Contributor{
		UserID:    member.ID,
		ProjectID: other.ID,
		Role:      models.RoleAuthor,
	}).Error)

	_, err := Resolve(gdb, actorFor(member), Params{
		ProjectID: idString(other.ID),
		IssueID:   idString(issue.ID),
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentScopedToIssue(t *testing.T) {
	gdb, member, _, project, _, comment := setupTestDB(t)

	other := models.Issue{
		ProjectID:  project.ID,
		Title:      "Unrelated",
		Tag:        models.IssueTagTask,
		Priority:   models.IssuePriorityLow,
		Status:     models.IssueStatusToDo,
		AuthorID:   member.ID,
		AssigneeID: member.ID,
	}
	assert.NoError(t, gdb.Create(&other).Error)

	_, err := Resolve(gdb, actorFor(member), Params{
		ProjectID: idString(project.ID),
		IssueID:   idString(other.ID),
		CommentID: idString(comment.ID),
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentWithoutIssueContext(t *testing.T) {
	gdb, member, _, project, _, comment := setupTestDB(t)

	_, err := Resolve(gdb, actorFor(member), Params{
		ProjectID: idString(project.ID),
		CommentID: idString(comment.ID),
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTargetUserNotScopedToMembership(t *testing.T) {
	gdb, member, outsider, project, _, _ := setupTestDB(t)

	// The outsider is not a contributor but is still a valid target for
	// an add/remove-contributor call.
	rc, err := Resolve(gdb, actorFor(member), Params{
		ProjectID:    idString(project.ID),
		TargetUserID: idString(outsider.ID),
	})

	assert.NoError(t, err)
	assert.Equal(t, outsider.ID, rc.TargetUser.ID)

	_, err = Resolve(gdb, actorFor(member), Params{
		ProjectID:    idString(project.ID),
		TargetUserID: "424242",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMalformedIdentifiers(t *testing.T) {
	gdb, member, _, project, _, _ := setupTestDB(t)

	_, err := Resolve(gdb, actorFor(member), Params{ProjectID: "not-a-number"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Resolve(gdb, actorFor(member), Params{
		ProjectID: idString(project.ID),
		IssueID:   "-1",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
