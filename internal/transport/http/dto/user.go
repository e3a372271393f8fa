// Package dto 声明各路由的请求模式，校验在进入业务逻辑前完成
package dto

type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"omitempty,min=2,max=30"`
	About    string `json:"about" binding:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" binding:"omitempty,url"`
}

type SigninReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileReq struct {
	Name  string `json:"name" binding:"required,min=2,max=30"`
	About string `json:"about" binding:"required,min=2,max=30"`
}

type UpdateAvatarReq struct {
	Avatar string `json:"avatar" binding:"required,url"`
}

// 路径 id 必须是 24 位十六进制（ObjectID 的文本形式）
type UserIDParam struct {
	UserID string `uri:"userId" binding:"required,len=24,hexadecimal"`
}
