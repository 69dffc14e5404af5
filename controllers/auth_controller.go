package controllers

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"go-agrisathi/config"
	"go-agrisathi/middleware"
	"go-agrisathi/models"
	"go-agrisathi/utils"
)

// AuthController 处理用户认证相关的请求
type AuthController struct {
	DB *sql.DB
}

// NewAuthController 创建一个新的AuthController实例
func NewAuthController(db *sql.DB) *AuthController {
	return &AuthController{DB: db}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 用户注册
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	if req.Language == "" {
		req.Language = models.LangEnglish
	}

	// 检查用户名是否已存在
	var count int
	err := c.DB.QueryRow("SELECT COUNT(*) FROM users WHERE username = ?", req.Username).Scan(&count)
	if err != nil {
		utils.InternalServerError(ctx, "failed to query users")
		return
	}

	if count > 0 {
		utils.BadRequest(ctx, "username already exists")
		return
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalServerError(ctx, "failed to hash password")
		return
	}

	// 插入用户记录
	result, err := c.DB.Exec(
		"INSERT INTO users (username, password, phone, preferred_language, created_at) VALUES (?, ?, ?, ?, ?)",
		req.Username, string(hashedPassword), req.Phone, req.Language,
		time.Now().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	userID, err := result.LastInsertId()
	if err != nil {
		utils.InternalServerError(ctx, "failed to get user id")
		return
	}

	// 生成JWT令牌
	token, err := generateToken(int(userID))
	if err != nil {
		utils.InternalServerError(ctx, "failed to generate token")
		return
	}

	utils.Created(ctx, gin.H{
		"token":    token,
		"username": req.Username,
		"userId":   userID,
	})
}

// Login 用户登录
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	// 查询用户
	var user models.User
	var hashedPassword string
	err := c.DB.QueryRow(
		"SELECT id, username, password FROM users WHERE username = ?",
		req.Username,
	).Scan(&user.ID, &user.Username, &hashedPassword)

	if err != nil {
		if err == sql.ErrNoRows {
			utils.BadRequest(ctx, "invalid username or password")
		} else {
			utils.InternalServerError(ctx, err.Error())
		}
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.BadRequest(ctx, "invalid username or password")
		return
	}

	// 生成JWT令牌
	token, err := generateToken(user.ID)
	if err != nil {
		utils.InternalServerError(ctx, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"token":    token,
		"username": req.Username,
		"userId":   user.ID,
	})
}

// generateToken 生成JWT令牌，有效期7天
func generateToken(userID int) (string, error) {
	claims := middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Get().JWT.Secret))
}
