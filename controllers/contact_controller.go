package controllers

import (
	"net/http"

	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactController struct {
	contactService *services.ContactService
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{
		contactService: services.NewContactService(db),
	}
}

// @Summary Submit a contact request
// @Description Stores a contact form submission
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body models.CreateContactRequest true "Contact payload"
// @Success 200 {object} map[string]interface{} "status: OK, id: submission id"
// @Failure 400 {object} map[string]string "status: error message"
// @Router /contact [post]
func (cc *ContactController) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	contact, err := cc.contactService.CreateContact(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "id": contact.ID})
}
