package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/softdesk-dev/softdesk/internal/serializers"
	"github.com/stretchr/testify/assert"
)

func TestCommentLifecycle(t *testing.T) {
	r := setupTest(t)
	u1, token := createUser(t, "Ada", "ada@example.com")

	detail := createProject(t, r, token, "Tracker")
	issue := createIssue(t, r, token, detail.ID, "Crash on save")
	comment := createComment(t, r, token, detail.ID, issue.ID, "Reproduced on main")

	assert.Equal(t, u1.ID, comment.AuthorID)
	assert.Equal(t, issue.ID, comment.IssueID)
	assert.False(t, comment.CreatedTime.IsZero())

	base := fmt.Sprintf("/projects/%d/issues/%d/comments", detail.ID, issue.ID)

	w := performRequest(r, "GET", base, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []serializers.CommentResponse
	decode(t, w, &list)
	assert.Len(t, list, 1)

	path := fmt.Sprintf("%s/%d", base, comment.ID)

	w = performRequest(r, "GET", path, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "PUT", path, gin.H{"description": "Fixed by #42"}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated serializers.CommentResponse
	decode(t, w, &updated)
	assert.Equal(t, "Fixed by #42", updated.Description)

	w = performRequest(r, "DELETE", path, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(r, "GET", path, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentMutationRequiresCommentAuthor(t *testing.T) {
	r := setupTest(t)
	_, token := createUser(t, "Ada", "ada@example.com")
	u2, contributor := createUser(t, "Grace", "grace@example.com")

	detail := createProject(t, r, token, "Tracker")
	addContributor(t, r, token, detail.ID, u2.ID)
	issue := createIssue(t, r, token, detail.ID, "Crash on save")
	comment := createComment(t, r, token, detail.ID, issue.ID, "Reproduced")

	path := fmt.Sprintf("/projects/%d/issues/%d/comments/%d", detail.ID, issue.ID, comment.ID)

	w := performRequest(r, "GET", path, nil, contributor)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "PUT", path, gin.H{"description": "Hijacked"}, contributor)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(r, "DELETE", path, nil, contributor)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A comment by the contributor is theirs to mutate.
	theirs := createComment(t, r, contributor, detail.ID, issue.ID, "Me too")
	theirPath := fmt.Sprintf("/projects/%d/issues/%d/comments/%d", detail.ID, issue.ID, theirs.ID)

	w = performRequest(r, "PUT", theirPath, gin.H{"description": "Me three"}, contributor)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "DELETE", theirPath, nil, contributor)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCommentScopedToItsIssue(t *testing.T) {
	r := setupTest(t)
	_, token := createUser(t, "Ada", "ada@example.com")

	detail := createProject(t, r, token, "Tracker")
	i1 := createIssue(t, r, token, detail.ID, "First")
	i2 := createIssue(t, r, token, detail.ID, "Second")
	comment := createComment(t, r, token, detail.ID, i1.ID, "On the first issue")

	w := performRequest(r, "GET", fmt.Sprintf("/projects/%d/issues/%d/comments/%d", detail.ID, i2.ID, comment.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
