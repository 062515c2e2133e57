package model

// DefaultImageURL 未提供头像时使用的占位图
const DefaultImageURL = "https://www.freeiconspng.com/uploads/computer-user-icon-8.png"

// User 用户，删除时级联删除其全部 Post
type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:text;not null"`
	LastName  string `gorm:"type:text;not null"`
	ImageURL  string `gorm:"type:text;not null"` // 为空时由仓储层写入 DefaultImageURL

	// Posts 由仓储层按 user_id 单独查询填充
	Posts []Post `gorm:"-"`
}

func (User) TableName() string { return "users" }

// FullName 返回 "first last"
func (u User) FullName() string { return u.FirstName + " " + u.LastName }
