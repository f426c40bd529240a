package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewStatus 技术评审状态枚举
type ReviewStatus string

const (
	ReviewStatusDraft     ReviewStatus = "draft"
	ReviewStatusSubmitted ReviewStatus = "submitted"
	ReviewStatusClosed    ReviewStatus = "closed"
)

// TechnicalReview 技术评审模型 (MongoDB文档结构)
type TechnicalReview struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProjectID       string             `bson:"projectId" json:"projectId"`
	ProjectName     string             `bson:"projectName" json:"projectName"`
	ReviewDate      string             `bson:"reviewDate" json:"reviewDate"` // YYYY-MM-DD
	ReviewerName    string             `bson:"reviewerName" json:"reviewerName"`
	ReviewType      string             `bson:"reviewType" json:"reviewType"` // architecture | code | security | sdlc
	Findings        string             `bson:"findings" json:"findings"`
	Recommendations string             `bson:"recommendations,omitempty" json:"recommendations,omitempty"`
	Rating          int                `bson:"rating" json:"rating"` // 1-5
	Status          ReviewStatus       `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CreateTechnicalReviewRequest 创建技术评审请求
type CreateTechnicalReviewRequest struct {
	ProjectID       string `json:"projectId" binding:"required"`
	ProjectName     string `json:"projectName" binding:"required"`
	ReviewDate      string `json:"reviewDate" binding:"required"`
	ReviewerName    string `json:"reviewerName" binding:"required"`
	ReviewType      string `json:"reviewType" binding:"required"`
	Findings        string `json:"findings"`
	Recommendations string `json:"recommendations"`
	Rating          int    `json:"rating" binding:"min=0,max=5"`
}

// UpdateTechnicalReviewRequest 更新技术评审请求
type UpdateTechnicalReviewRequest struct {
	ReviewDate      string       `json:"reviewDate,omitempty"`
	ReviewerName    string       `json:"reviewerName,omitempty"`
	ReviewType      string       `json:"reviewType,omitempty"`
	Findings        string       `json:"findings,omitempty"`
	Recommendations string       `json:"recommendations,omitempty"`
	Rating          *int         `json:"rating,omitempty"`
	Status          ReviewStatus `json:"status,omitempty"`
}
