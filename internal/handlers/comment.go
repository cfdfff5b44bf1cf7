package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/softdesk-dev/softdesk/db"
	"github.com/softdesk-dev/softdesk/internal/authz"
	"github.com/softdesk-dev/softdesk/internal/models"
	"github.com/softdesk-dev/softdesk/internal/serializers"
)

type CreateCommentRequest struct {
	Description string `json:"description" binding:"required"`
}

type UpdateCommentRequest struct {
	Description *string `json:"description"`
}

func ListComments(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	var comments []models.Comment

	if err := db.DB.Where("issue_id = ?", rc.Issue.ID).Order("id").Find(&comments).Error; err != nil {
		log.Printf("Failed to list comments: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	response := []serializers.CommentResponse{}

	for _, comment := range comments {
		response = append(response, serializers.NewCommentResponse(comment))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateComment(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	var body CreateCommentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment := models.Comment{
		IssueID:     rc.Issue.ID,
		Description: body.Description,
		AuthorID:    rc.Actor.ID,
		CreatedTime: time.Now(),
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("Failed to create comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	ctx.JSON(http.StatusCreated, serializers.NewCommentResponse(comment))
}

func RetrieveComment(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewCommentResponse(*rc.Comment))
}

func UpdateComment(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	if !requireAllowed(ctx, authz.ActionUpdateComment, rc) {
		return
	}

	var body UpdateCommentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment := *rc.Comment

	if body.Description != nil {
		comment.Description = *body.Description
	}

	if err := db.DB.Save(&comment).Error; err != nil {
		log.Printf("Failed to update comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewCommentResponse(comment))
}

func DeleteComment(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	if !requireAllowed(ctx, authz.ActionDeleteComment, rc) {
		return
	}

	if err := db.DB.Delete(&models.Comment{}, rc.Comment.ID).Error; err != nil {
		log.Printf("Failed to delete comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
