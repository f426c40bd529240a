package utils

import (
	"os"
	"testing"

	"github.com/BerniceZTT/portfolio_end/models"
)

func TestMain(m *testing.M) {
	InitLogger()
	os.Exit(m.Run())
}

func TestStaticIdentityProvider(t *testing.T) {
	provider := NewStaticIdentityProvider()

	current := provider.Current()
	if current.UserID == "" || current.PreferredName == "" {
		t.Fatalf("静态身份不完整: %+v", current)
	}

	users := provider.List()
	if len(users) == 0 {
		t.Fatal("用户目录为空")
	}

	// 当前身份必须在目录中
	found := false
	for _, u := range users {
		if u.UserID == current.UserID {
			found = true
		}
	}
	if !found {
		t.Errorf("当前身份%s不在目录中", current.UserID)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{UserID: "u-42", PreferredName: "Test Manager", Role: models.UserRoleMANAGER}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("解析token失败: %v", err)
	}

	if claims["id"] != "u-42" || claims["username"] != "Test Manager" || claims["role"] != "MANAGER" {
		t.Errorf("claims不匹配: %+v", claims)
	}
}

func TestParseTokenInvalid(t *testing.T) {
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("非法token应返回错误")
	}
}

func TestParseReportDate(t *testing.T) {
	if _, ok := ParseReportDate("2024-06-01"); !ok {
		t.Error("纯日期格式应解析成功")
	}
	if _, ok := ParseReportDate("2024-06-01T10:00:00Z"); !ok {
		t.Error("RFC3339格式应解析成功")
	}
	if _, ok := ParseReportDate(""); ok {
		t.Error("空串不应解析成功")
	}
	if _, ok := ParseReportDate("06/01/2024"); ok {
		t.Error("不支持的格式不应解析成功")
	}

	a, _ := ParseReportDate("2024-06-01")
	b, _ := ParseReportDate("2024-06-08")
	if !a.Before(b) {
		t.Error("日期比较错误")
	}
}

func TestBoolPtr(t *testing.T) {
	v := true
	if !BoolPtr(&v, false) {
		t.Error("非nil指针应返回指向的值")
	}
	if !BoolPtr(nil, true) {
		t.Error("nil指针应返回默认值")
	}
}
