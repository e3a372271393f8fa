package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/elisfemina/react-mesto-api-full/internal/domain"
)

type CardService struct {
	repo domain.CardRepository
}

func NewCardService(repo domain.CardRepository) *CardService {
	return &CardService{repo: repo}
}

func (s *CardService) List(ctx context.Context) ([]domain.Card, error) {
	return s.repo.List(ctx)
}

func (s *CardService) Create(ctx context.Context, callerID, name, link string) (*domain.Card, error) {
	owner, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, domain.Unauthorized("authorization required")
	}
	c := &domain.Card{
		Name:  name,
		Link:  link,
		Owner: owner,
		Likes: []primitive.ObjectID{},
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete 只有 owner 能删，删除成功返回被删卡片
func (s *CardService) Delete(ctx context.Context, cardID, callerID string) (*domain.Card, error) {
	c, err := s.repo.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if c.Owner.Hex() != callerID {
		return nil, domain.Forbidden("cannot delete another user's card")
	}
	if err := s.repo.Delete(ctx, cardID); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CardService) Like(ctx context.Context, cardID, callerID string) (*domain.Card, error) {
	return s.repo.AddLike(ctx, cardID, callerID)
}

func (s *CardService) Dislike(ctx context.Context, cardID, callerID string) (*domain.Card, error) {
	return s.repo.RemoveLike(ctx, cardID, callerID)
}
