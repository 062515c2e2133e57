package model

// PostTag 文章与标签的多对多关联
// 复合主键 (post_id, tag_id) 保证同一对只出现一次
type PostTag struct {
	PostID uint  `gorm:"primaryKey;autoIncrement:false"`
	TagID  uint  `gorm:"primaryKey;autoIncrement:false;index:idx_post_tag_tag"`
	Post   *Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Tag    *Tag  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (PostTag) TableName() string { return "posts_tags" }
