package model

import "time"

// RecentPostsLimit 首页最近文章数量上限
const RecentPostsLimit = 5

// dateLayout 对应 "Mon Jan 2  2006, 3:04 PM"
const dateLayout = "Mon Jan 2  2006, 3:04 PM"

// Post 文章，必须属于一个 User
type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_post_created"`
	UserID    uint      `gorm:"not null;index:idx_post_user"`
	User      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	// Tags 通过 posts_tags 关联，由仓储层填充
	Tags []Tag `gorm:"-"`
}

func (Post) TableName() string { return "posts" }

// FormatDate 可读的创建时间
func (p Post) FormatDate() string { return p.CreatedAt.Format(dateLayout) }

// TagIDs 当前关联的标签 ID 集合
func (p Post) TagIDs() []uint {
	ids := make([]uint, len(p.Tags))
	for i, t := range p.Tags {
		ids[i] = t.ID
	}
	return ids
}
