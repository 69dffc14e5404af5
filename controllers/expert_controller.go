package controllers

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-agrisathi/advisory"
	"go-agrisathi/knowledge"
	"go-agrisathi/models"
	"go-agrisathi/utils"
)

// ExpertController 处理专家求助相关的请求
type ExpertController struct {
	DB *sql.DB
}

// NewExpertController 创建一个新的ExpertController实例
func NewExpertController(db *sql.DB) *ExpertController {
	return &ExpertController{DB: db}
}

// QuestionRequest 专家求助请求
type QuestionRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Question string `json:"question" binding:"required"`
	Language string `json:"language"`
}

// SubmitQuestion 保存专家求助记录。
// 提交时先跑一遍分类器和解决器，能自动解答的连同建议一起入库，
// 专家回访时可以直接看到系统的初判
func (c *ExpertController) SubmitQuestion(ctx *gin.Context) {
	userID := ctx.GetInt("userID")
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	lang := normalizeLang(req.Language)

	interpretation := advisory.ClassifyQuery(req.Question)
	resolution, err := advisory.ResolveAdvisory(interpretation, lang)
	if err != nil && errors.Is(err, knowledge.ErrMissingTranslation) {
		resolution, err = advisory.ResolveAdvisory(interpretation, models.LangEnglish)
	}
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	var advice string
	if resolution.Advice != nil {
		advice = resolution.Advice.Treatment
	}

	record := models.ExpertRequest{
		UserID:    userID,
		Ticket:    utils.NewTicketCode(),
		Phone:     req.Phone,
		Question:  req.Question,
		Language:  lang,
		Intent:    string(interpretation.Intent),
		Crops:     strings.Join(interpretation.Crops, ","),
		Symptoms:  strings.Join(interpretation.Symptoms, ","),
		Advice:    advice,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}

	// 开始事务
	tx, err := c.DB.Begin()
	if err != nil {
		utils.InternalServerError(ctx, "failed to begin transaction")
		return
	}

	result, err := tx.Exec(`
		INSERT INTO expert_requests (
			user_id, ticket, phone, question, language,
			intent, crops, symptoms, advice, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?)
	`, record.UserID, record.Ticket, record.Phone, record.Question, record.Language,
		record.Intent, record.Crops, record.Symptoms, record.Advice, record.Timestamp)
	if err != nil {
		tx.Rollback()
		utils.InternalServerError(ctx, err.Error())
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		utils.InternalServerError(ctx, err.Error())
		return
	}

	if err = tx.Commit(); err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}
	record.ID = int(id)

	utils.Created(ctx, gin.H{
		"request":        record,
		"interpretation": interpretation,
		"resolution":     resolution,
		"message":        localizeMessage(knowledge.MsgExpertThankYou, lang),
	})
}

// GetQuestions 获取当前用户的求助记录列表
func (c *ExpertController) GetQuestions(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	// 获取查询参数
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	intent := ctx.Query("intent")
	crop := ctx.Query("crop")

	// 构建基础查询
	query := `
		SELECT id, user_id, ticket, phone, question, language,
			intent, crops, symptoms, advice, created_at
		FROM expert_requests
		WHERE user_id = ?
	`
	queryParams := []interface{}{userID}

	// 添加筛选条件
	if intent != "" {
		query += " AND intent = ?"
		queryParams = append(queryParams, intent)
	}

	if crop != "" {
		query += " AND crops LIKE ?"
		queryParams = append(queryParams, "%"+crop+"%")
	}

	// 添加排序和分页
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	queryParams = append(queryParams, pageSize, (page-1)*pageSize)

	rows, err := c.DB.Query(query, queryParams...)
	if err != nil {
		utils.InternalServerError(ctx, "failed to query expert requests")
		return
	}
	defer rows.Close()

	var records []models.ExpertRequest
	for rows.Next() {
		var record models.ExpertRequest
		err := rows.Scan(
			&record.ID, &record.UserID, &record.Ticket, &record.Phone,
			&record.Question, &record.Language, &record.Intent,
			&record.Crops, &record.Symptoms, &record.Advice, &record.Timestamp,
		)
		if err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		records = append(records, record)
	}

	// 获取总记录数
	var totalCount int
	countQuery := "SELECT COUNT(*) FROM expert_requests WHERE user_id = ?"
	countParams := []interface{}{userID}

	if intent != "" {
		countQuery += " AND intent = ?"
		countParams = append(countParams, intent)
	}

	if crop != "" {
		countQuery += " AND crops LIKE ?"
		countParams = append(countParams, "%"+crop+"%")
	}

	err = c.DB.QueryRow(countQuery, countParams...).Scan(&totalCount)
	if err != nil {
		utils.InternalServerError(ctx, "failed to count expert requests")
		return
	}

	utils.SuccessWithPagination(ctx, records, totalCount, page, pageSize)
}

// GetQuestion 按工单号获取单条求助记录
func (c *ExpertController) GetQuestion(ctx *gin.Context) {
	userID := ctx.GetInt("userID")
	ticket := ctx.Query("ticket")
	if !utils.ValidateTicketCode(ticket) {
		utils.BadRequest(ctx, "invalid ticket code")
		return
	}

	var record models.ExpertRequest
	err := c.DB.QueryRow(`
		SELECT id, user_id, ticket, phone, question, language,
			intent, crops, symptoms, advice, created_at
		FROM expert_requests
		WHERE ticket = ? AND user_id = ?
	`, ticket, userID).Scan(
		&record.ID, &record.UserID, &record.Ticket, &record.Phone,
		&record.Question, &record.Language, &record.Intent,
		&record.Crops, &record.Symptoms, &record.Advice, &record.Timestamp,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFound(ctx, "expert request not found")
		} else {
			utils.InternalServerError(ctx, err.Error())
		}
		return
	}

	utils.Success(ctx, record)
}
