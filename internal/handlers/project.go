package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/softdesk-dev/softdesk/db"
	"github.com/softdesk-dev/softdesk/internal/authz"
	"github.com/softdesk-dev/softdesk/internal/models"
	"github.com/softdesk-dev/softdesk/internal/serializers"
	"github.com/softdesk-dev/softdesk/internal/utils"
	"gorm.io/gorm"
)

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=Backend Frontend IOS Android"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type" binding:"omitempty,oneof=Backend Frontend IOS Android"`
}

func CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	project := models.Project{
		Title:       body.Title,
		Description: body.Description,
		Type:        body.Type,
	}

	// The project and its Author link succeed or fail together; a
	// project without an author must never exist.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		link := models.Contributor{
			UserID:    userID,
			ProjectID: project.ID,
			Role:      models.RoleAuthor,
		}

		return tx.Create(&link).Error
	})

	if err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, serializers.NewProjectDetail(project, userID, []uint{userID}, nil))
}

func ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var projects []models.Project

	err = db.DB.
		Joins("JOIN contributors ON contributors.project_id = projects.id").
		Where("contributors.user_id = ?", userID).
		Find(&projects).Error

	if err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := []serializers.ProjectListItem{}

	for _, project := range projects {
		response = append(response, serializers.NewProjectListItem(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func RetrieveProject(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	detail, err := buildProjectDetail(rc.Project)

	if err != nil {
		log.Printf("Failed to load project detail: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func UpdateProject(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	if !requireAllowed(ctx, authz.ActionUpdateProject, rc) {
		return
	}

	var body UpdateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project := rc.Project

	if body.Title != nil {
		project.Title = *body.Title
	}

	if body.Description != nil {
		project.Description = *body.Description
	}

	if body.Type != nil {
		project.Type = *body.Type
	}

	if err := db.DB.Save(&project).Error; err != nil {
		log.Printf("Failed to update project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	detail, err := buildProjectDetail(project)

	if err != nil {
		log.Printf("Failed to load project detail: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func DeleteProject(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	if !requireAllowed(ctx, authz.ActionDeleteProject, rc) {
		return
	}

	// Explicit cascade: comments of the project's issues, the issues,
	// the contributor links, then the project itself.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		issueIDs := tx.Model(&models.Issue{}).Select("id").Where("project_id = ?", rc.Project.ID)

		if err := tx.Where("issue_id IN (?)", issueIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", rc.Project.ID).Delete(&models.Issue{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", rc.Project.ID).Delete(&models.Contributor{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, rc.Project.ID).Error
	})

	if err != nil {
		log.Printf("Failed to delete project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func buildProjectDetail(project models.Project) (serializers.ProjectDetail, error) {
	var links []models.Contributor

	if err := db.DB.Where("project_id = ?", project.ID).Order("id").Find(&links).Error; err != nil {
		return serializers.ProjectDetail{}, err
	}

	var authorID uint
	contributorIDs := make([]uint, 0, len(links))

	for _, link := range links {
		contributorIDs = append(contributorIDs, link.UserID)
		if link.Role == models.RoleAuthor {
			authorID = link.UserID
		}
	}

	var issueIDs []uint

	if err := db.DB.Model(&models.Issue{}).Where("project_id = ?", project.ID).Order("id").Pluck("id", &issueIDs).Error; err != nil {
		return serializers.ProjectDetail{}, err
	}

	return serializers.NewProjectDetail(project, authorID, contributorIDs, issueIDs), nil
}
