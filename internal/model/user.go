package model

// User 用户模型
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Account      string `gorm:"size:255;not null;uniqueIndex;comment:登录账号" json:"account"`
	Email        string `gorm:"size:255;not null;uniqueIndex;comment:邮箱" json:"email"`
	Name         string `gorm:"size:50;comment:昵称" json:"name"`
	Password     string `gorm:"size:255;not null;comment:密码" json:"-"` // json:"-" 序列化时忽略密码
	Avatar       string `gorm:"size:500;comment:头像" json:"avatar"`
	Cover        string `gorm:"size:500;comment:主页封面" json:"cover"`
	Introduction string `gorm:"size:160;comment:自我介绍" json:"introduction"`
	Role         string `gorm:"size:64;not null;default:'user';comment:用户角色" json:"role"`

	// 关联关系（通过 followships 连接表）
	Tweets     []Tweet `gorm:"foreignKey:UserID" json:"-"`
	Followings []User  `gorm:"many2many:followships;foreignKey:ID;joinForeignKey:FollowerID;References:ID;joinReferences:FollowingID" json:"-"`
	Followers  []User  `gorm:"many2many:followships;foreignKey:ID;joinForeignKey:FollowingID;References:ID;joinReferences:FollowerID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
