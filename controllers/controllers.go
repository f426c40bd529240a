package controllers

import (
	"github.com/BerniceZTT/portfolio_end/external"
	"github.com/BerniceZTT/portfolio_end/utils"
)

var (
	portfolioClient  *external.Client
	identityProvider utils.IdentityProvider
)

// Init 注入控制器依赖
// 外部API客户端和身份提供者由main装配，测试中可替换
func Init(client *external.Client, provider utils.IdentityProvider) {
	portfolioClient = client
	identityProvider = provider
}
