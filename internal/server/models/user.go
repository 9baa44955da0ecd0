// Package models defines the server-side records shared by repositories,
// services and the HTTP layer.
package models

import "time"

// DefaultAvatarURL is assigned to accounts created through registration.
const DefaultAvatarURL = "https://randomuser.me/api/portraits/lego/1.jpg"

// User is an account. PasswordHash is an argon2id PHC string and never
// leaves the server.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Bio          string    `db:"bio"`
	AvatarURL    string    `db:"avatar_url"`
	ProfileViews int64     `db:"profile_views"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserView is the account as returned to its owner.
type UserView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
}

func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
	}
}

// ProfilePatch carries the optional fields of a profile update. Nil means
// "leave as is".
type ProfilePatch struct {
	Name      *string `json:"name" validate:"omitnil,min=1,max=100"`
	Bio       *string `json:"bio" validate:"omitnil,max=500"`
	AvatarURL *string `json:"avatarUrl" validate:"omitnil,url"`
}

// Stats summarises activity on an account.
type Stats struct {
	ProfileViews     int64     `json:"profileViews"`
	LinkClicks       int64     `json:"linkClicks"`
	ChatInteractions int       `json:"chatInteractions"`
	TopLinks         []TopLink `json:"topLinks"`
}

type TopLink struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Clicks int64  `json:"clicks"`
}

// PublicProfile is the published page of an account: no email, no stats.
type PublicProfile struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Bio       string       `json:"bio"`
	AvatarURL string       `json:"avatarUrl"`
	Links     []PublicLink `json:"links"`
}

type PublicLink struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}
