package controllers

import (
	"errors"
	"net/http"

	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	postService *services.PostService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		postService: services.NewPostService(db),
	}
}

// @Summary List posts
// @Description Returns all posts with their categories, newest first
// @Tags posts
// @Produce json
// @Success 200 {object} map[string]interface{} "status: OK, posts: list of posts"
// @Router /posts [get]
func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.postService.GetAllPosts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, posts[i].ToView())
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "posts": views})
}

// @Summary Get a post
// @Description Returns one post by id, or post: null when it does not exist
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{} "status: OK, post: post or null"
// @Failure 400 {object} map[string]string "status: Invalid id"
// @Router /posts/{id} [get]
func (pc *PostController) GetPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := pc.postService.GetPostByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		// The public detail view treats a missing post as an empty result.
		c.JSON(http.StatusOK, gin.H{"status": "OK", "post": nil})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "post": post.ToView()})
}

// @Summary Get a post (admin)
// @Description Returns one post by id for the admin edit form
// @Tags admin-posts
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status: OK, post: post"
// @Failure 404 {object} map[string]string "status: Not found"
// @Router /admin/posts/{id} [get]
func (pc *PostController) GetAdminPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := pc.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "post": post.ToView()})
}

// @Summary Create a post
// @Description Creates a post and tags it with the submitted categories
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param post body models.CreatePostRequest true "Post payload"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status: OK, id: new post id"
// @Failure 400 {object} map[string]string "status: error message"
// @Router /admin/posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	post, err := pc.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "id": post.ID})
}

// @Summary Update a post
// @Description Rewrites a post's fields and syncs its categories to the submitted set
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body models.UpdatePostRequest true "Post payload"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status: OK, post: updated post"
// @Failure 400 {object} map[string]string "status: error message"
// @Failure 404 {object} map[string]string "status: Not found"
// @Router /admin/posts/{id} [put]
func (pc *PostController) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	post, err := pc.postService.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "post": post.ToView()})
}

// @Summary Delete a post
// @Description Deletes a post and all of its category associations
// @Tags admin-posts
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "status: OK"
// @Failure 404 {object} map[string]string "status: Not found"
// @Router /admin/posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
