package entity

import "time"

type User struct {
	ID                string
	TenantID          string
	Email             string
	FullName          string
	Disabled          bool
	AuthenticationUID string // пустая строка, если аккаунта у провайдера нет
	CreatedAt         *time.Time
	UpdatedAt         *time.Time
	UpdatedByID       string
}

// ActingUser — тот, кто выполняет операцию (не путать с изменяемыми пользователями)
type ActingUser struct {
	ID       string
	Email    string
	TenantID string
}

type UserFilter struct {
	Disabled *bool
}
