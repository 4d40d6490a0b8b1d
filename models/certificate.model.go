package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is an issued proof-of-completion artifact. Created exactly
// once per completed enrollment, never mutated or deleted afterwards.
type Certificate struct {
	gorm.Model
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	CourseID          uint      `gorm:"index;not null" json:"course_id"`
	CertificateNumber string    `gorm:"unique;not null" json:"certificate_number"`
	IssuedDate        time.Time `json:"issued_date"`
	DownloadURL       string    `gorm:"default:''" json:"download_url"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Course Course `gorm:"foreignKey:CourseID" json:"-"`
}
