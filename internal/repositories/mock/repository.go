// Package mock provides in-memory repository implementations for tests.
package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sajibhasan/blogpost-api/internal/models"
	"github.com/sajibhasan/blogpost-api/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostRepository struct {
	mutex sync.RWMutex
	posts map[string]models.Post
}

type UserRepository struct {
	mutex sync.RWMutex
	users map[string]models.User
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]models.Post)}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]models.User)}
}

// PostRepository implementation

func (m *PostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	m.posts[post.ID.Hex()] = *post
	return nil
}

func (m *PostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return &post, nil
}

func (m *PostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []models.Post{}
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (m *PostRepository) SavePost(ctx context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID.Hex()]; !exists {
		return repositories.ErrNotFound
	}
	post.UpdatedAt = time.Now()
	m.posts[post.ID.Hex()] = *post
	return nil
}

func (m *PostRepository) DeletePost(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repositories.ErrInvalidID
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

// Seed stores a post as-is, keeping its preset ID and timestamps.
func (m *PostRepository) Seed(post models.Post) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts[post.ID.Hex()] = post
}

// UserRepository implementation

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	m.users[user.ID.Hex()] = *user
	return nil
}

func (m *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.FirebaseUID == firebaseUID {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[user.ID.Hex()]; !exists {
		return repositories.ErrNotFound
	}
	m.users[user.ID.Hex()] = *user
	return nil
}
