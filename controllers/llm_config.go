package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BerniceZTT/portfolio_end/models"
	"github.com/BerniceZTT/portfolio_end/repository"
	"github.com/BerniceZTT/portfolio_end/utils"
)

// 合法的LLM提供商
var validLLMProviders = map[models.LLMProvider]bool{
	models.LLMProviderOpenAI:    true,
	models.LLMProviderAnthropic: true,
	models.LLMProviderGemini:    true,
	models.LLMProviderOllama:    true,
}

// GetLLMConfigs 获取LLM配置列表
// GET /api/llm-config
func GetLLMConfigs(c *gin.Context) {
	collection := repository.Collection(repository.LLMConfigsCollection)
	ctx := repository.GetContext()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("[LLM配置] 获取配置列表失败")
		utils.ErrorResponse(c, "获取配置列表失败", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var configs []models.LLMConfig
	if err := cursor.All(ctx, &configs); err != nil {
		utils.Logger.Error().Err(err).Msg("[LLM配置] 解析配置列表失败")
		utils.ErrorResponse(c, "获取配置列表失败", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"configs": configs,
			"total":   len(configs),
		},
	})
}

// GetActiveLLMConfig 获取当前激活的LLM配置
// GET /api/llm-config/active
func GetActiveLLMConfig(c *gin.Context) {
	collection := repository.Collection(repository.LLMConfigsCollection)
	ctx := repository.GetContext()

	var config models.LLMConfig
	err := collection.FindOne(ctx, bson.M{"isActive": true}).Decode(&config)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "没有激活的LLM配置"})
		} else {
			utils.HandleError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    config,
	})
}

// CreateLLMConfig 创建LLM配置
// POST /api/llm-config
func CreateLLMConfig(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req models.CreateLLMConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求数据格式不正确", "detail": err.Error()})
		return
	}

	if !validLLMProviders[req.Provider] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的LLM提供商: " + string(req.Provider)})
		return
	}

	collection := repository.Collection(repository.LLMConfigsCollection)
	ctx := repository.GetContext()

	isActive := utils.BoolPtr(req.IsActive, false)

	// 新配置激活时，先取消其他配置的激活状态
	if isActive {
		if _, err := collection.UpdateMany(ctx, bson.M{"isActive": true},
			bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}); err != nil {
			utils.HandleError(c, err)
			return
		}
	}

	config := models.LLMConfig{
		Provider:    req.Provider,
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		IsActive:    isActive,
		Description: req.Description,
		CreatorID:   user.ID,
		CreatorName: user.Username,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	result, err := collection.InsertOne(ctx, config)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("[LLM配置] 创建配置失败")
		utils.ErrorResponse(c, "创建配置失败", http.StatusInternalServerError)
		return
	}

	config.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "配置创建成功",
		"data":    config,
	})
}

// UpdateLLMConfig 更新LLM配置
// PUT /api/llm-config/:id
func UpdateLLMConfig(c *gin.Context) {
	configID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(configID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的配置ID"})
		return
	}

	var req models.UpdateLLMConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求数据格式不正确", "detail": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.Model != "" {
		update["model"] = req.Model
	}
	if req.Temperature != nil {
		update["temperature"] = *req.Temperature
	}
	if req.MaxTokens != nil {
		update["maxTokens"] = *req.MaxTokens
	}
	if req.Description != "" {
		update["description"] = req.Description
	}

	collection := repository.Collection(repository.LLMConfigsCollection)
	ctx := repository.GetContext()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "配置不存在"})
		return
	}

	utils.SuccessResponse(c, nil, "配置更新成功")
}

// ActivateLLMConfig 激活指定配置，同时取消其他配置
// PATCH /api/llm-config/:id/activate
func ActivateLLMConfig(c *gin.Context) {
	configID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(configID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的配置ID"})
		return
	}

	collection := repository.Collection(repository.LLMConfigsCollection)
	ctx := repository.GetContext()

	// 目标配置必须存在
	var config models.LLMConfig
	if err := collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&config); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "配置不存在"})
		} else {
			utils.HandleError(c, err)
		}
		return
	}

	// 先全部取消激活，再激活目标配置
	if _, err := collection.UpdateMany(ctx, bson.M{"isActive": true},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}); err != nil {
		utils.HandleError(c, err)
		return
	}
	if _, err := collection.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$set": bson.M{"isActive": true, "updatedAt": time.Now()}}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "配置已激活")
}

// DeleteLLMConfig 删除LLM配置
// DELETE /api/llm-config/:id
func DeleteLLMConfig(c *gin.Context) {
	configID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(configID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的配置ID"})
		return
	}

	collection := repository.Collection(repository.LLMConfigsCollection)
	ctx := repository.GetContext()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "配置不存在"})
		return
	}

	utils.SuccessResponse(c, nil, "配置删除成功")
}
