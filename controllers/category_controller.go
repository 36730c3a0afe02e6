package controllers

import (
	"net/http"

	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	categoryService *services.CategoryService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		categoryService: services.NewCategoryService(db),
	}
}

// @Summary List categories
// @Description Returns all categories, newest first
// @Tags admin-categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status: OK, categories: list of categories"
// @Router /admin/categories [get]
func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "categories": categories})
}

// @Summary Get a category
// @Tags admin-categories
// @Produce json
// @Param id path int true "Category ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status: OK, category: category"
// @Failure 404 {object} map[string]string "status: Not found"
// @Router /admin/categories/{id} [get]
func (cc *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := cc.categoryService.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "category": category})
}

// @Summary Create a category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category payload"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status: OK, id: new category id"
// @Failure 400 {object} map[string]string "status: error message"
// @Router /admin/categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category, err := cc.categoryService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "id": category.ID})
}

// @Summary Rename a category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body models.CategoryRequest true "Category payload"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status: OK, category: updated category"
// @Failure 404 {object} map[string]string "status: Not found"
// @Router /admin/categories/{id} [put]
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category, err := cc.categoryService.RenameCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "category": category})
}

// @Summary Delete a category
// @Description Fails with 409 while any post still references the category
// @Tags admin-categories
// @Produce json
// @Param id path int true "Category ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "status: OK"
// @Failure 404 {object} map[string]string "status: Not found"
// @Failure 409 {object} map[string]string "status: Category is in use"
// @Router /admin/categories/{id} [delete]
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
