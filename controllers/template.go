package controllers

import (
	"net/http"
	"strconv"
	"time"

	"journal-portal-api/config"
	"journal-portal-api/models"
	"journal-portal-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TemplateRequest struct {
	Name   string            `json:"name" binding:"required"`
	Config models.JSONConfig `json:"config" binding:"required"`
}

// CreateTemplate stores a new layout configuration. Re-using an existing
// name bumps the version instead of overwriting earlier revisions, so a
// paper keeps rendering with the template version it was typeset against.
func CreateTemplate(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionManageTemplates) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var template models.Template
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var latest models.Template
		version := 1
		err := tx.Where("name = ?", req.Name).Order("version DESC").First(&latest).Error
		if err == nil {
			version = latest.Version + 1
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		now := time.Now()
		template = models.Template{
			Name:      req.Name,
			Version:   version,
			Config:    req.Config,
			CreatedBy: userID,
			CreateAt:  now,
			UpdateAt:  now,
		}
		return tx.Create(&template).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "template": template})
}

// GetTemplates lists layout templates; latest_only=true collapses to the
// newest version per name.
func GetTemplates(c *gin.Context) {
	var templates []models.Template
	if err := config.DB.Order("name ASC, version DESC").Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}

	if c.Query("latest_only") == "true" {
		seen := make(map[string]bool)
		latest := templates[:0]
		for _, t := range templates {
			if !seen[t.Name] {
				seen[t.Name] = true
				latest = append(latest, t)
			}
		}
		templates = latest
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "templates": templates, "total": len(templates)})
}

// GetTemplate returns one template version.
func GetTemplate(c *gin.Context) {
	templateID, err := strconv.Atoi(c.Param("id"))
	if err != nil || templateID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
		return
	}

	var template models.Template
	if err := config.DB.Where("template_id = ?", templateID).First(&template).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "template": template})
}
