package controllers

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-agrisathi/models"
	"go-agrisathi/utils"
)

// ForumController 处理社区论坛和用户反馈相关的请求
type ForumController struct {
	DB *sql.DB
}

// NewForumController 创建一个新的ForumController实例
func NewForumController(db *sql.DB) *ForumController {
	return &ForumController{DB: db}
}

// PostRequest 发帖请求
type PostRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreatePost 发布论坛帖子
func (c *ForumController) CreatePost(ctx *gin.Context) {
	userID := ctx.GetInt("userID")
	var req PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	// 帖子作者显示注册用户名
	var author string
	err := c.DB.QueryRow("SELECT username FROM users WHERE id = ?", userID).Scan(&author)
	if err != nil {
		utils.InternalServerError(ctx, "failed to query user")
		return
	}

	post := models.ForumPost{
		UserID:    userID,
		Author:    author,
		Text:      req.Text,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}

	result, err := c.DB.Exec(`
		INSERT INTO forum_posts (user_id, author, text, created_at)
		VALUES (?,?,?,?)
	`, post.UserID, post.Author, post.Text, post.Timestamp)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}
	post.ID = int(id)

	utils.Created(ctx, post)
}

// GetPosts 获取论坛帖子列表，按时间倒序分页
func (c *ForumController) GetPosts(ctx *gin.Context) {
	// 获取查询参数
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	author := ctx.Query("author")

	query := `
		SELECT id, user_id, author, text, created_at
		FROM forum_posts
		WHERE 1=1
	`
	queryParams := []interface{}{}

	if author != "" {
		query += " AND author = ?"
		queryParams = append(queryParams, author)
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	queryParams = append(queryParams, pageSize, (page-1)*pageSize)

	rows, err := c.DB.Query(query, queryParams...)
	if err != nil {
		utils.InternalServerError(ctx, "failed to query forum posts")
		return
	}
	defer rows.Close()

	var posts []models.ForumPost
	for rows.Next() {
		var post models.ForumPost
		err := rows.Scan(&post.ID, &post.UserID, &post.Author, &post.Text, &post.Timestamp)
		if err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		posts = append(posts, post)
	}

	// 获取总记录数
	var totalCount int
	countQuery := "SELECT COUNT(*) FROM forum_posts WHERE 1=1"
	countParams := []interface{}{}

	if author != "" {
		countQuery += " AND author = ?"
		countParams = append(countParams, author)
	}

	err = c.DB.QueryRow(countQuery, countParams...).Scan(&totalCount)
	if err != nil {
		utils.InternalServerError(ctx, "failed to count forum posts")
		return
	}

	utils.SuccessWithPagination(ctx, posts, totalCount, page, pageSize)
}

// FeedbackRequest 反馈请求
type FeedbackRequest struct {
	Text string `json:"text" binding:"required"`
}

// SaveFeedback 保存用户反馈
func (c *ForumController) SaveFeedback(ctx *gin.Context) {
	userID := ctx.GetInt("userID")
	var req FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	feedback := models.Feedback{
		UserID:    userID,
		Text:      req.Text,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}

	result, err := c.DB.Exec(`
		INSERT INTO feedback (user_id, text, created_at)
		VALUES (?,?,?)
	`, feedback.UserID, feedback.Text, feedback.Timestamp)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}
	feedback.ID = int(id)

	utils.Created(ctx, feedback)
}
