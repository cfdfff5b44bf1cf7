package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/softdesk-dev/softdesk/db"
	"github.com/softdesk-dev/softdesk/internal/auth"
	"github.com/softdesk-dev/softdesk/internal/models"
	"github.com/softdesk-dev/softdesk/internal/router"
	"github.com/softdesk-dev/softdesk/internal/serializers"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest gives every test a fresh sqlite database and the real
// routing table, middleware included.
func setupTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	assert.NoError(t, auth.InitJWTSecret())

	_ = os.Remove("test_handlers.db")

	gdb, err := gorm.Open(sqlite.Open("test_handlers.db"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	db.DB = gdb
	assert.NoError(t, db.MigrateDatabase())

	t.Cleanup(func() { _ = os.Remove("test_handlers.db") })

	return router.NewRouter()
}

// createUser inserts a user directly and returns it with a valid access
// token, skipping the signup endpoint.
func createUser(t *testing.T, firstName, email string) (models.User, string) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := models.User{
		FirstName:    firstName,
		LastName:     "Tester",
		Email:        email,
		PasswordHash: string(hash),
	}
	assert.NoError(t, db.DB.Create(&user).Error)

	pair, err := auth.GenerateTokenPair(user.ID, user.Email)
	assert.NoError(t, err)

	return user, pair.Access
}

func performRequest(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer

	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// createProject drives the real endpoint so the author link is created
// the same way production does it.
func createProject(t *testing.T, r http.Handler, token, title string) serializers.ProjectDetail {
	w := performRequest(r, "POST", "/projects", gin.H{
		"title": title,
		"type":  models.ProjectTypeBackend,
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	var detail serializers.ProjectDetail
	decode(t, w, &detail)
	return detail
}

func createIssue(t *testing.T, r http.Handler, token string, projectID uint, title string) serializers.IssueResponse {
	w := performRequest(r, "POST", fmt.Sprintf("/projects/%d/issues", projectID), gin.H{
		"title":    title,
		"tag":      models.IssueTagBug,
		"priority": models.IssuePriorityHigh,
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	var issue serializers.IssueResponse
	decode(t, w, &issue)
	return issue
}

func createComment(t *testing.T, r http.Handler, token string, projectID, issueID uint, description string) serializers.CommentResponse {
	w := performRequest(r, "POST", fmt.Sprintf("/projects/%d/issues/%d/comments", projectID, issueID), gin.H{
		"description": description,
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	var comment serializers.CommentResponse
	decode(t, w, &comment)
	return comment
}

func addContributor(t *testing.T, r http.Handler, token string, projectID, userID uint) *httptest.ResponseRecorder {
	return performRequest(r, "POST", fmt.Sprintf("/projects/%d/users", projectID), gin.H{
		"user_id": userID,
	}, token)
}
