package model

import "time"

type Post struct {
	ID                     uint      `json:"id" gorm:"primaryKey"`
	CreatedAt              time.Time `json:"created_at" gorm:"index"`
	Title                  string    `json:"title" gorm:"not null;size:255"`
	SourceFilePath         string    `json:"source_file_path" gorm:"not null;unique"`
	VisualizationImagePath *string   `json:"visualization_image_path"`
	AuthorID               uint      `json:"author_id" gorm:"not null;index"`
	Author                 User      `json:"-" gorm:"foreignKey:AuthorID;references:ID"`
	Comments               []Comment `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}
