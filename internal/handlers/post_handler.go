package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sajibhasan/blogpost-api/internal/models"
	"github.com/sajibhasan/blogpost-api/internal/repositories"
)

// MediaStore is the image-host contract the post handlers depend on.
type MediaStore interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
	Destroy(ctx context.Context, publicID string) error
}

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	media          MediaStore
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, media MediaStore) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		media:          media,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GetAllPosts)
	g.GET("/posts/:id", h.GetSinglePost)
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// GetAllPosts returns every post, newest first. No pagination.
func (h *PostHandler) GetAllPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		log.Printf("Error while GetAllPosts: %v", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, models.APIResponse{
		Status:  http.StatusOK,
		Message: "All posts",
		Data:    posts,
	})
}

// GetSinglePost retrieves one post by ID
func (h *PostHandler) GetSinglePost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.APIResponse{
				Status:  http.StatusNotFound,
				Message: "Post not found",
				Data:    []models.Post{},
			})
		}
		log.Printf("Error while GetSinglePost: %v", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, models.APIResponse{
		Status:  http.StatusOK,
		Message: "Post fetched successfully",
		Data:    post,
	})
}

// CreatePost creates a new post from a multipart form. The author must exist;
// the optional "image" file is uploaded to the media host first.
func (h *PostHandler) CreatePost(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid request payload",
		})
	}

	for _, field := range []string{req.Title, req.Content, req.UserID} {
		if strings.TrimSpace(field) == "" {
			return c.JSON(http.StatusBadRequest, models.APIResponse{
				Status:  http.StatusBadRequest,
				Message: "All fields are required.",
			})
		}
	}

	author, err := h.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, models.APIResponse{
				Status:  http.StatusBadRequest,
				Message: "Something went wrong...",
			})
		}
		log.Printf("Error while CreatePost: %v", err)
		return internalError(c)
	}

	// An image that fails to upload never fails the request; the post is
	// simply created without one.
	image := ""
	if url, ok := h.uploadImage(c); ok {
		image = url
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		Author:  author.ID,
		Image:   image,
	}
	if err := h.postRepository.CreatePost(ctx, post); err != nil {
		log.Printf("Error while CreatePost: %v", err)
		return internalError(c)
	}

	// Re-read to confirm the insert actually persisted.
	createdPost, err := h.postRepository.GetPostByID(ctx, post.ID.Hex())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, models.APIResponse{
				Status:  http.StatusBadRequest,
				Message: "Something Went Wrong while creating post!!! Please try later",
			})
		}
		log.Printf("Error while CreatePost: %v", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, models.APIResponse{
		Status:  http.StatusOK,
		Message: "Post successfully created.",
		Data:    createdPost,
	})
}

// UpdatePost applies a partial update to a post owned by the caller
func (h *PostHandler) UpdatePost(c echo.Context) error {
	ctx := c.Request().Context()
	claims := c.Get("user").(*models.JwtCustomClaims)

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid request payload",
		})
	}

	file, ferr := c.FormFile("image")
	hasImage := ferr == nil && file != nil

	if req.Title == "" && req.Content == "" && !hasImage {
		return c.JSON(http.StatusOK, models.APIResponse{
			Status:  http.StatusOK,
			Message: "No changes made.",
		})
	}

	post, err := h.postRepository.GetPostByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.APIResponse{
				Status:  http.StatusNotFound,
				Message: "Post not found",
				Data:    []models.Post{},
			})
		}
		log.Printf("Error while UpdatePost: %v", err)
		return internalError(c)
	}

	// Only the author may change the post.
	if claims.UserID != post.Author.Hex() {
		return c.JSON(http.StatusForbidden, models.APIResponse{
			Status:  http.StatusForbidden,
			Message: "Sorry! You can't change the post.",
			Data:    []models.Post{},
		})
	}

	if hasImage {
		if url, ok := h.uploadImage(c); ok && url != "" {
			post.Image = url
		}
	}
	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}

	if err := h.postRepository.SavePost(ctx, post); err != nil {
		log.Printf("Error while UpdatePost: %v", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, models.APIResponse{
		Status:  http.StatusOK,
		Message: "Post updated successfully",
		Data:    post,
	})
}

// DeletePost removes a post and, in the background, its hosted image
func (h *PostHandler) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.APIResponse{
				Status:  http.StatusNotFound,
				Message: "Post not found",
			})
		}
		log.Printf("Error while DeletePost: %v", err)
		return internalError(c)
	}

	publicID := imagePublicID(post.Image)

	if err := h.postRepository.DeletePost(ctx, postID); err != nil {
		log.Printf("Error while DeletePost: %v", err)
		return internalError(c)
	}

	// Remove the hosted image in the background. The outcome is logged only
	// and never affects the response.
	if publicID != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := h.media.Destroy(ctx, publicID); err != nil {
				log.Printf("Error while deleting image from Cloudinary: %v", err)
			} else {
				log.Printf("Image deleted from Cloudinary: %s", publicID)
			}
		}()
	}

	return c.JSON(http.StatusOK, models.APIResponse{
		Status:  http.StatusOK,
		Message: "Post deleted successfully...",
	})
}

// uploadImage uploads the request's "image" file, if any. It reports false
// when no file was sent or the upload failed; upload failures are logged.
func (h *PostHandler) uploadImage(c echo.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return "", false
	}

	src, err := file.Open()
	if err != nil {
		log.Printf("Error while opening uploaded image: %v", err)
		return "", false
	}
	defer src.Close()

	url, err := h.media.Upload(c.Request().Context(), src)
	if err != nil {
		log.Printf("Error while uploading image to Cloudinary: %v", err)
		return "", false
	}
	return url, true
}

// imagePublicID derives the media host's public ID from a delivery URL:
// the last path segment, truncated at its first dot. Empty URL yields "".
func imagePublicID(url string) string {
	if url == "" {
		return ""
	}
	seg := url
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	if i := strings.Index(seg, "."); i >= 0 {
		seg = seg[:i]
	}
	return seg
}

// internalError is the uniform answer for unexpected store or network
// failures, after the error has been logged.
func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, models.APIResponse{
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
