package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/softdesk-dev/softdesk/db"
	"github.com/softdesk-dev/softdesk/internal/authz"
	"github.com/softdesk-dev/softdesk/internal/models"
	"github.com/softdesk-dev/softdesk/internal/serializers"
	"gorm.io/gorm"
)

type CreateIssueRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Tag         string `json:"tag" binding:"required,oneof=Bug Task Improvement"`
	Priority    string `json:"priority" binding:"required,oneof=Low Medium High"`
	Status      string `json:"status" binding:"omitempty,oneof=ToDo OnGoing Done"`
}

type UpdateIssueRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Tag         *string `json:"tag" binding:"omitempty,oneof=Bug Task Improvement"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Status      *string `json:"status" binding:"omitempty,oneof=ToDo OnGoing Done"`
	AssigneeID  *uint   `json:"assignee_id"`
}

func ListIssues(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	var issues []models.Issue

	if err := db.DB.Where("project_id = ?", rc.Project.ID).Order("id").Find(&issues).Error; err != nil {
		log.Printf("Failed to list issues: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	response := []serializers.IssueResponse{}

	for _, issue := range issues {
		response = append(response, serializers.NewIssueResponse(issue))
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateIssue records a new issue with the acting user as author and
// default assignee. Client-supplied author or assignee fields are
// ignored at creation time.
func CreateIssue(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	var body CreateIssueRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	status := body.Status

	if status == "" {
		status = models.IssueStatusToDo
	}

	issue := models.Issue{
		ProjectID:   rc.Project.ID,
		Title:       body.Title,
		Description: body.Description,
		Tag:         body.Tag,
		Priority:    body.Priority,
		Status:      status,
		AuthorID:    rc.Actor.ID,
		AssigneeID:  rc.Actor.ID,
		CreatedTime: time.Now(),
	}

	if err := db.DB.Create(&issue).Error; err != nil {
		log.Printf("Failed to create issue: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	ctx.JSON(http.StatusCreated, serializers.NewIssueResponse(issue))
}

func RetrieveIssue(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewIssueResponse(*rc.Issue))
}

func UpdateIssue(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	if !requireAllowed(ctx, authz.ActionUpdateIssue, rc) {
		return
	}

	var body UpdateIssueRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	issue := *rc.Issue

	if body.Title != nil {
		issue.Title = *body.Title
	}

	if body.Description != nil {
		issue.Description = *body.Description
	}

	if body.Tag != nil {
		issue.Tag = *body.Tag
	}

	if body.Priority != nil {
		issue.Priority = *body.Priority
	}

	if body.Status != nil {
		issue.Status = *body.Status
	}

	if body.AssigneeID != nil {
		// The assignee must already be on the project.
		var link models.Contributor

		err := db.DB.Where("user_id = ? AND project_id = ?", *body.AssigneeID, rc.Project.ID).First(&link).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Assignee must be a contributor of the project"})
			} else {
				log.Printf("Failed to check assignee: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		issue.AssigneeID = *body.AssigneeID
	}

	if err := db.DB.Save(&issue).Error; err != nil {
		log.Printf("Failed to update issue: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewIssueResponse(issue))
}

func DeleteIssue(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	if !requireAllowed(ctx, authz.ActionDeleteIssue, rc) {
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("issue_id = ?", rc.Issue.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Issue{}, rc.Issue.ID).Error
	})

	if err != nil {
		log.Printf("Failed to delete issue: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
