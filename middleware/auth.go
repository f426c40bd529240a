package middleware

import (
	"strings"

	"github.com/BerniceZTT/portfolio_end/utils"

	"github.com/gin-gonic/gin"
)

// IdentityMiddleware 身份中间件
// 携带合法Bearer token时采用token中的身份，否则回落到注入的静态身份
// 当前阶段不拒绝任何请求，真实认证接入后只需替换IdentityProvider实现
func IdentityMiddleware(provider utils.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token != "" {
				claims, err := utils.ParseToken(token)
				if err == nil && claims["id"] != nil && claims["username"] != nil {
					c.Set("user", claims)
					c.Next()
					return
				}
				if err != nil {
					utils.Logger.Warn().Err(err).Msg("Token解析失败，回落到静态身份")
				}
			}
		}

		c.Set("user", provider.Current())
		c.Next()
	}
}
