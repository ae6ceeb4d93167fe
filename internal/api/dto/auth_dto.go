package dto

// SignUpRequest 注册请求
type SignUpRequest struct {
	Account       string `json:"account" binding:"required,min=1,max=255"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email,max=255"`
	Password      string `json:"password" binding:"required,min=6,max=255"`
	CheckPassword string `json:"checkPassword" binding:"required"`
}

// SignInRequest 登录请求
type SignInRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenData 登录成功返回的 Token 信息
type TokenData struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"`
	User      UserInfo `json:"user"`
}

// UserInfo 用户公开信息（不含密码）
type UserInfo struct {
	ID           int64  `json:"id"`
	Account      string `json:"account"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	Cover        string `json:"cover"`
	Introduction string `json:"introduction"`
	Role         string `json:"role"`
}
