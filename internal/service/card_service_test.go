package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/elisfemina/react-mesto-api-full/internal/domain"
	"github.com/elisfemina/react-mesto-api-full/internal/repo"
)

func TestCardServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewCardService(repo.NewMemoryCardRepo())
	owner := primitive.NewObjectID().Hex()

	card, err := svc.Create(ctx, owner, "Ab", "https://x.test/a.png")
	require.NoError(t, err)
	assert.Equal(t, owner, card.Owner.Hex())
	assert.Empty(t, card.Likes)
	assert.NotNil(t, card.Likes) // 序列化成 [] 而不是 null
	assert.False(t, card.CreatedAt.IsZero())
}

func TestCardServiceLikes(t *testing.T) {
	ctx := context.Background()
	svc := NewCardService(repo.NewMemoryCardRepo())
	owner := primitive.NewObjectID().Hex()
	liker := primitive.NewObjectID().Hex()

	card, err := svc.Create(ctx, owner, "Ab", "https://x.test/a.png")
	require.NoError(t, err)
	id := card.ID.Hex()

	t.Run("LikeTwiceIsIdempotent", func(t *testing.T) {
		_, err := svc.Like(ctx, id, liker)
		require.NoError(t, err)
		out, err := svc.Like(ctx, id, liker)
		require.NoError(t, err)
		assert.Len(t, out.Likes, 1)
		assert.Equal(t, liker, out.Likes[0].Hex())
	})

	t.Run("DislikeRemoves", func(t *testing.T) {
		out, err := svc.Dislike(ctx, id, liker)
		require.NoError(t, err)
		assert.Empty(t, out.Likes)
	})

	t.Run("DislikeWhenAbsentIsNoop", func(t *testing.T) {
		out, err := svc.Dislike(ctx, id, liker)
		require.NoError(t, err)
		assert.Empty(t, out.Likes)
	})

	t.Run("UnknownCardNotFound", func(t *testing.T) {
		_, err := svc.Like(ctx, primitive.NewObjectID().Hex(), liker)
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.KindNotFound, de.Kind)
	})

	t.Run("MalformedCardIDBadRequest", func(t *testing.T) {
		_, err := svc.Like(ctx, "zzz", liker)
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.KindBadRequest, de.Kind)
	})
}

func TestCardServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewCardService(repo.NewMemoryCardRepo())
	owner := primitive.NewObjectID().Hex()
	stranger := primitive.NewObjectID().Hex()

	card, err := svc.Create(ctx, owner, "Ab", "https://x.test/a.png")
	require.NoError(t, err)
	id := card.ID.Hex()

	t.Run("ForeignCallerForbidden", func(t *testing.T) {
		_, err := svc.Delete(ctx, id, stranger)
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.KindForbidden, de.Kind)

		// 卡片仍然在
		still, err := svc.repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, still.ID.Hex())
	})

	t.Run("OwnerDeletesAndGetsCardBack", func(t *testing.T) {
		out, err := svc.Delete(ctx, id, owner)
		require.NoError(t, err)
		assert.Equal(t, id, out.ID.Hex())

		_, err = svc.repo.FindByID(ctx, id)
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.KindNotFound, de.Kind)
	})

	t.Run("UnknownIDNotFound", func(t *testing.T) {
		_, err := svc.Delete(ctx, primitive.NewObjectID().Hex(), owner)
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.KindNotFound, de.Kind)
	})
}
