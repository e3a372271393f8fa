package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Card struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Link  string             `bson:"link" json:"link"`
	Owner primitive.ObjectID `bson:"owner" json:"owner"`
	// likes 是集合语义：同一用户至多出现一次
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}

// Likes 的增删由存储层以单文档原子操作实现（$addToSet / $pull），天然幂等
type CardRepository interface {
	List(ctx context.Context) ([]Card, error)
	Create(ctx context.Context, c *Card) error
	FindByID(ctx context.Context, id string) (*Card, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, cardID, userID string) (*Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (*Card, error)
}
