package service

import (
	"context"

	"github.com/elisfemina/react-mesto-api-full/internal/core/auth"
	"github.com/elisfemina/react-mesto-api-full/internal/domain"
	"github.com/elisfemina/react-mesto-api-full/pkg/utils"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	About    string
	Avatar   string
}

type UserService struct {
	repo  domain.UserRepository
	jwter *auth.JWTer
}

func NewUserService(repo domain.UserRepository, jwter *auth.JWTer) *UserService {
	return &UserService{repo: repo, jwter: jwter}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		// bcrypt 的 72 字节上限：这里必须拒绝，否则会落一个空哈希、永远登录不上的账号
		return nil, domain.BadRequest("password must be at most 72 bytes")
	}
	u := &domain.User{
		Name:     in.Name,
		About:    in.About,
		Avatar:   in.Avatar,
		Email:    in.Email,
		Password: hash,
	}
	if u.Name == "" {
		u.Name = domain.DefaultName
	}
	if u.About == "" {
		u.About = domain.DefaultAbout
	}
	if u.Avatar == "" {
		u.Avatar = domain.DefaultAvatar
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login 故意返回同一条模糊报错，不暴露是邮箱还是密码错了
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil || !utils.CheckPassword(password, u.Password) {
		return "", domain.Unauthorized("incorrect email or password")
	}
	tok, err := s.jwter.Issue(u.ID.Hex())
	if err != nil {
		return "", domain.Internal("issue token", err)
	}
	return tok, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// UpdateProfile / UpdateAvatar 只改调用者自己的档案，id 一律取自鉴权上下文
func (s *UserService) UpdateProfile(ctx context.Context, callerID, name, about string) (*domain.User, error) {
	return s.repo.UpdateProfile(ctx, callerID, name, about)
}

func (s *UserService) UpdateAvatar(ctx context.Context, callerID, avatar string) (*domain.User, error) {
	return s.repo.UpdateAvatar(ctx, callerID, avatar)
}
