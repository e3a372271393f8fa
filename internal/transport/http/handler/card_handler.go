package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elisfemina/react-mesto-api-full/internal/domain"
	"github.com/elisfemina/react-mesto-api-full/internal/service"
	"github.com/elisfemina/react-mesto-api-full/internal/transport/http/dto"
	"github.com/elisfemina/react-mesto-api-full/internal/transport/http/middleware"
	resp "github.com/elisfemina/react-mesto-api-full/internal/transport/http/response"
)

type CardHandler struct {
	svc *service.CardService
}

func NewCardHandler(svc *service.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

func (h *CardHandler) GetCards(c *gin.Context) {
	cards, err := h.svc.List(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) CreateCard(c *gin.Context) {
	var in dto.CreateCardReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	card, err := h.svc.Create(c.Request.Context(), c.GetString(middleware.KeyUserID), in.Name, in.Link)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) DeleteCard(c *gin.Context) {
	var p dto.CardIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		resp.BadRequest(c, "invalid card id")
		return
	}
	card, err := h.svc.Delete(c.Request.Context(), p.CardID, c.GetString(middleware.KeyUserID))
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) LikeCard(c *gin.Context) {
	h.updateLike(c, h.svc.Like)
}

func (h *CardHandler) DislikeCard(c *gin.Context) {
	h.updateLike(c, h.svc.Dislike)
}

func (h *CardHandler) updateLike(c *gin.Context, op func(ctx context.Context, cardID, callerID string) (*domain.Card, error)) {
	var p dto.CardIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		resp.BadRequest(c, "invalid card id")
		return
	}
	card, err := op(c.Request.Context(), p.CardID, c.GetString(middleware.KeyUserID))
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}
