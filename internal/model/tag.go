package model

// Tag 标签，名称全局唯一
type Tag struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:text;not null;uniqueIndex:ux_tag_name"`

	Posts []Post `gorm:"-"`
}

func (Tag) TableName() string { return "tags" }

// PostIDs 当前关联的文章 ID 集合
func (t Tag) PostIDs() []uint {
	ids := make([]uint, len(t.Posts))
	for i, p := range t.Posts {
		ids[i] = p.ID
	}
	return ids
}
