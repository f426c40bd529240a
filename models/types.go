package models

// UserRole 用户角色枚举
type UserRole string

const (
	UserRoleMANAGER  UserRole = "MANAGER"  // 项目经理
	UserRoleDELIVERY UserRole = "DELIVERY" // 交付负责人
	UserRoleEXEC     UserRole = "EXEC"     // 高管视图
)

// User 用户目录条目
// 当前版本使用静态桩用户，不落库
type User struct {
	UserID        string   `json:"userId"`
	PreferredName string   `json:"preferredName"`
	Role          UserRole `json:"role"`
}
