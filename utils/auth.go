package utils

import (
	"fmt"
	"time"

	"github.com/BerniceZTT/portfolio_end/config"
	"github.com/BerniceZTT/portfolio_end/models"

	"github.com/dgrijalva/jwt-go"
)

var jwtSecret = []byte(config.LoadConfig().JWTKey)

// IdentityProvider 身份提供者接口
// 当前实现为静态桩身份，后续接入真实认证时替换实现即可，调用方无需改动
type IdentityProvider interface {
	Current() models.User
	List() []models.User
}

// StaticIdentityProvider 静态身份提供者
type StaticIdentityProvider struct {
	current models.User
	users   []models.User
}

// NewStaticIdentityProvider 创建静态身份提供者
func NewStaticIdentityProvider() *StaticIdentityProvider {
	users := []models.User{
		{UserID: "u-1001", PreferredName: "Priya Sharma", Role: models.UserRoleMANAGER},
		{UserID: "u-1002", PreferredName: "Rahul Verma", Role: models.UserRoleDELIVERY},
		{UserID: "u-1003", PreferredName: "Anita Desai", Role: models.UserRoleEXEC},
	}
	return &StaticIdentityProvider{
		current: users[0],
		users:   users,
	}
}

// Current 返回当前桩用户
func (p *StaticIdentityProvider) Current() models.User {
	return p.current
}

// List 返回全部桩用户
func (p *StaticIdentityProvider) List() []models.User {
	return p.users
}

// GenerateToken 生成JWT令牌
func GenerateToken(user models.User) (string, error) {
	Logger.Info().
		Str("userId", user.UserID).
		Str("preferredName", user.PreferredName).
		Str("role", string(user.Role)).
		Msg("开始生成token")

	// 创建JWT Claims
	claims := jwt.MapClaims{
		"id":       user.UserID,
		"username": user.PreferredName,
		"role":     string(user.Role),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(), // 30天有效期
		"iat":      time.Now().Unix(),
	}

	// 创建token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名token
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		Logger.Error().Err(err).Msg("生成token失败")
		return "", err
	}

	return tokenString, nil
}

// ParseToken 解析和验证JWT令牌
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	// 验证token并提取claims
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("无效的token")
}
