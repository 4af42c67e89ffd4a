// Package entity defines the linked terminal account model.
package entity

import "time"

// TerminalAccount is a broker terminal account linked to a user. The
// login/server pair is unique per user so the same account cannot be
// linked twice.
type TerminalAccount struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"index:idx_user_login_server,unique;not null"`
	Login  int64  `gorm:"index:idx_user_login_server,unique;not null"`
	Server string `gorm:"index:idx_user_login_server,unique;size:255;not null"`
	Label  string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
