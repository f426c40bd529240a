package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/BerniceZTT/portfolio_end/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// LoginUser 请求上下文中的当前用户
type LoginUser struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Username string `json:"name"`
}

// GetUser 从gin上下文获取当前用户信息
func GetUser(c *gin.Context) (*LoginUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("GetUser 上下文中缺少用户信息")
	}

	// 处理不同类型的用户信息
	switch v := currentUser.(type) {
	case models.User:
		return &LoginUser{ID: v.UserID, Username: v.PreferredName, Role: string(v.Role)}, nil
	case jwt.MapClaims:
		return loginUserFromClaims(map[string]interface{}(v))
	case map[string]interface{}:
		return loginUserFromClaims(v)
	default:
		// 尝试通过 JSON 序列化/反序列化转换
		data, err := json.Marshal(currentUser)
		if err != nil {
			return nil, fmt.Errorf("序列化用户信息失败: %v", err)
		}
		var claims map[string]interface{}
		if err := json.Unmarshal(data, &claims); err != nil {
			return nil, fmt.Errorf("解析用户信息失败: %v", err)
		}
		return loginUserFromClaims(claims)
	}
}

// loginUserFromClaims 从claims映射提取用户信息
func loginUserFromClaims(claims map[string]interface{}) (*LoginUser, error) {
	u := &LoginUser{}
	if id, ok := claims["id"].(string); ok {
		u.ID = id
	}
	if name, ok := claims["username"].(string); ok {
		u.Username = name
	}
	if role, ok := claims["role"].(string); ok {
		u.Role = role
	}
	if u.ID == "" {
		return nil, fmt.Errorf("用户信息缺少必要字段")
	}
	return u, nil
}

// BoolPtr 取指针布尔值，nil时返回默认值
func BoolPtr(v *bool, defaultValue bool) bool {
	if v == nil {
		return defaultValue
	}
	return *v
}

// ParseReportDate 解析上报日期，兼容纯日期和RFC3339两种格式
func ParseReportDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
