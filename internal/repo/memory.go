package repo

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/elisfemina/react-mesto-api-full/internal/domain"
)

// 内存实现与 mongo 实现保持同样的错误语义，供测试和本地联调使用

type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]domain.User // key: hex id
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: map[string]domain.User{}}
}

func (r *MemoryUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
			return domain.Conflict("user with this email already exists")
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.ID.Hex()] = *u
	return nil
}

func (r *MemoryUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.BadRequest("invalid user id")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NotFound("user not found")
	}
	return &u, nil
}

func (r *MemoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *MemoryUserRepo) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	return r.update(id, func(u *domain.User) { u.Name = name; u.About = about })
}

func (r *MemoryUserRepo) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	return r.update(id, func(u *domain.User) { u.Avatar = avatar })
}

func (r *MemoryUserRepo) update(id string, apply func(*domain.User)) (*domain.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.BadRequest("invalid user id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NotFound("user not found")
	}
	apply(&u)
	r.users[id] = u
	return &u, nil
}

type MemoryCardRepo struct {
	mu    sync.RWMutex
	cards map[string]domain.Card
}

func NewMemoryCardRepo() *MemoryCardRepo {
	return &MemoryCardRepo{cards: map[string]domain.Card{}}
}

func (r *MemoryCardRepo) List(_ context.Context) ([]domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Card{}
	for _, c := range r.cards {
		out = append(out, c)
	}
	return out, nil
}

func (r *MemoryCardRepo) Create(_ context.Context, c *domain.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.Likes == nil {
		c.Likes = []primitive.ObjectID{}
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.cards[c.ID.Hex()] = *c
	return nil
}

func (r *MemoryCardRepo) FindByID(_ context.Context, id string) (*domain.Card, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.BadRequest("invalid card id")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cards[id]
	if !ok {
		return nil, domain.NotFound("card not found")
	}
	return &c, nil
}

func (r *MemoryCardRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.BadRequest("invalid card id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cards[id]; !ok {
		return domain.NotFound("card not found")
	}
	delete(r.cards, id)
	return nil
}

func (r *MemoryCardRepo) AddLike(_ context.Context, cardID, userID string) (*domain.Card, error) {
	return r.updateLikes(cardID, userID, true)
}

func (r *MemoryCardRepo) RemoveLike(_ context.Context, cardID, userID string) (*domain.Card, error) {
	return r.updateLikes(cardID, userID, false)
}

func (r *MemoryCardRepo) updateLikes(cardID, userID string, add bool) (*domain.Card, error) {
	if _, err := primitive.ObjectIDFromHex(cardID); err != nil {
		return nil, domain.BadRequest("invalid card id")
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.BadRequest("invalid user id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[cardID]
	if !ok {
		return nil, domain.NotFound("card not found")
	}
	likes := []primitive.ObjectID{}
	present := false
	for _, l := range c.Likes {
		if l == uid {
			present = true
			if !add {
				continue // $pull
			}
		}
		likes = append(likes, l)
	}
	if add && !present { // $addToSet
		likes = append(likes, uid)
	}
	c.Likes = likes
	r.cards[cardID] = c
	return &c, nil
}
