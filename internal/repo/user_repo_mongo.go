package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elisfemina/react-mesto-api-full/internal/domain"
)

type UserRepo struct{ col *mongo.Collection }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Conflict("user with this email already exists")
		}
		return domain.Internal("create user", err)
	}
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.BadRequest("invalid user id")
	}
	var u domain.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NotFound("user not found")
	}
	if err != nil {
		return nil, domain.Internal("find user", err)
	}
	return &u, nil
}

// FindByEmail 返回含密码哈希的完整文档，仅供登录校验；查不到返回 nil, nil
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Internal("find user by email", err)
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.Internal("list users", err)
	}
	users := []domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, domain.Internal("decode users", err)
	}
	return users, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	return r.findAndSet(ctx, id, bson.M{"name": name, "about": about})
}

func (r *UserRepo) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	return r.findAndSet(ctx, id, bson.M{"avatar": avatar})
}

func (r *UserRepo) findAndSet(ctx context.Context, id string, set bson.M) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.BadRequest("invalid user id")
	}
	after := options.After
	var u domain.User
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NotFound("user not found")
	}
	if err != nil {
		return nil, domain.Internal("update user", err)
	}
	return &u, nil
}
