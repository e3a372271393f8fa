package dto

type CreateCardReq struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
	Link string `json:"link" binding:"required,url"`
}

type CardIDParam struct {
	CardID string `uri:"cardId" binding:"required,len=24,hexadecimal"`
}
