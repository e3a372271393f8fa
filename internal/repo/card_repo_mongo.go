package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elisfemina/react-mesto-api-full/internal/domain"
)

type CardRepo struct{ col *mongo.Collection }

func NewCardRepo(db *mongo.Database) *CardRepo {
	return &CardRepo{col: db.Collection("cards")}
}

func (r *CardRepo) List(ctx context.Context) ([]domain.Card, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.Internal("list cards", err)
	}
	cards := []domain.Card{}
	if err := cur.All(ctx, &cards); err != nil {
		return nil, domain.Internal("decode cards", err)
	}
	return cards, nil
}

func (r *CardRepo) Create(ctx context.Context, c *domain.Card) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.Likes == nil {
		c.Likes = []primitive.ObjectID{}
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return domain.Internal("create card", err)
	}
	return nil
}

func (r *CardRepo) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.BadRequest("invalid card id")
	}
	var c domain.Card
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NotFound("card not found")
	}
	if err != nil {
		return nil, domain.Internal("find card", err)
	}
	return &c, nil
}

func (r *CardRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.BadRequest("invalid card id")
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domain.Internal("delete card", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("card not found")
	}
	return nil
}

// AddLike 单文档原子 $addToSet，重复点赞天然无效果
func (r *CardRepo) AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	return r.updateLikes(ctx, cardID, userID, "$addToSet")
}

// RemoveLike 单文档原子 $pull，未点赞时集合保持不变
func (r *CardRepo) RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	return r.updateLikes(ctx, cardID, userID, "$pull")
}

func (r *CardRepo) updateLikes(ctx context.Context, cardID, userID, op string) (*domain.Card, error) {
	cid, err := primitive.ObjectIDFromHex(cardID)
	if err != nil {
		return nil, domain.BadRequest("invalid card id")
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.BadRequest("invalid user id")
	}
	after := options.After
	var c domain.Card
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": cid},
		bson.M{op: bson.M{"likes": uid}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NotFound("card not found")
	}
	if err != nil {
		return nil, domain.Internal("update likes", err)
	}
	return &c, nil
}
