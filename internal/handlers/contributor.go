package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/softdesk-dev/softdesk/db"
	"github.com/softdesk-dev/softdesk/internal/authz"
	"github.com/softdesk-dev/softdesk/internal/models"
	"github.com/softdesk-dev/softdesk/internal/serializers"
	"gorm.io/gorm"
)

type AddContributorRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func ListContributors(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	var links []models.Contributor

	err := db.DB.Preload("User").Where("project_id = ?", rc.Project.ID).Order("id").Find(&links).Error

	if err != nil {
		log.Printf("Failed to list contributors: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contributors"})
		return
	}

	response := []serializers.ContributorResponse{}

	for _, link := range links {
		response = append(response, serializers.NewContributorResponse(link.User, link.Role))
	}

	ctx.JSON(http.StatusOK, response)
}

// AddContributor links a user to the project. Adding a user who is
// already linked changes nothing and says so with 304.
func AddContributor(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	if !requireAllowed(ctx, authz.ActionAddContributor, rc) {
		return
	}

	var body AddContributorRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "You should give an user_id"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, body.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to fetch user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var existing models.Contributor

	err := db.DB.Where("user_id = ? AND project_id = ?", user.ID, rc.Project.ID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusNotModified, gin.H{"message": "User is already a contributor"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check contributor link: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	link := models.Contributor{
		UserID:    user.ID,
		ProjectID: rc.Project.ID,
		Role:      models.RoleContributor,
	}

	if err := db.DB.Create(&link).Error; err != nil {
		// A concurrent add lost the race against the unique index; the
		// end state is the one the caller asked for.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusNotModified, gin.H{"message": "User is already a contributor"})
			return
		}
		log.Printf("Failed to add contributor: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add contributor"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User has been added to the project"})
}

// RemoveContributor unlinks a user from the project. Removing a user
// who is not linked is a no-op (304); removing the Author link is
// forbidden outright.
func RemoveContributor(ctx *gin.Context) {
	rc, ok := resolveRequest(ctx)

	if !ok {
		return
	}

	if !requireAllowed(ctx, authz.ActionRemoveContributor, rc) {
		return
	}

	var link models.Contributor

	err := db.DB.Where("user_id = ? AND project_id = ?", rc.TargetUser.ID, rc.Project.ID).First(&link).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.Status(http.StatusNotModified)
		} else {
			log.Printf("Failed to fetch contributor link: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !authz.CanRemoveContributor(link) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "The project author cannot be removed"})
		return
	}

	if err := db.DB.Delete(&link).Error; err != nil {
		log.Printf("Failed to remove contributor: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove contributor"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User has been removed from the project"})
}
