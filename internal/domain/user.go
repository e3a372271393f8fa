package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 未填写 name/about/avatar 时的默认档案
const (
	DefaultName   = "Jacques-Yves Cousteau"
	DefaultAbout  = "Explorer"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	About  string             `bson:"about" json:"about"`
	Avatar string             `bson:"avatar" json:"avatar"`
	Email  string             `bson:"email" json:"email"`
	// 密码哈希只在登录校验时读取，永不序列化
	Password string `bson:"password" json:"-"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (*User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*User, error)
}
