package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LLMProvider LLM提供商枚举
type LLMProvider string

const (
	LLMProviderOpenAI    LLMProvider = "openai"
	LLMProviderAnthropic LLMProvider = "anthropic"
	LLMProviderGemini    LLMProvider = "gemini"
	LLMProviderOllama    LLMProvider = "ollama"
)

// LLMConfig LLM配置模型 (MongoDB文档结构)
// 同一时刻最多只有一条配置处于激活状态
type LLMConfig struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Provider    LLMProvider        `bson:"provider" json:"provider"`
	Model       string             `bson:"model" json:"model"`
	Temperature float64            `bson:"temperature" json:"temperature"`
	MaxTokens   int                `bson:"maxTokens" json:"maxTokens"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	// 创建信息
	CreatorID   string    `bson:"creatorId" json:"creatorId"`
	CreatorName string    `bson:"creatorName" json:"creatorName"`
	CreatedAt   time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CreateLLMConfigRequest 创建LLM配置请求
type CreateLLMConfigRequest struct {
	Provider    LLMProvider `json:"provider" binding:"required"`
	Model       string      `json:"model" binding:"required"`
	Temperature float64     `json:"temperature"`
	MaxTokens   int         `json:"maxTokens"`
	IsActive    *bool       `json:"isActive,omitempty"`
	Description string      `json:"description"`
}

// UpdateLLMConfigRequest 更新LLM配置请求
type UpdateLLMConfigRequest struct {
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"maxTokens,omitempty"`
	Description string   `json:"description,omitempty"`
}
