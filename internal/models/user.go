package models

import "time"

// User представляет пользователя сервера документов
type User struct {
	CreatedAt   time.Time  `json:"created_at"`    // время создания
	LastLogin   *time.Time `json:"last_login"`    // время последнего входа
	ID          string     `json:"id"`            // UUID пользователя (ключ партиции users/{id}/storage)
	Username    string     `json:"username"`      // уникальный username
	AuthKeyHash string     `json:"auth_key_hash"` // SHA256 хеш auth_key
	PublicSalt  string     `json:"public_salt"`   // base64 encoded salt (32 bytes)
}

// Document представляет JSON документ пользователя на сервере
type Document struct {
	UpdatedAt time.Time `json:"updated_at"` // время последней записи
	UserID    string    `json:"user_id"`    // владелец документа
	Key       string    `json:"key"`        // ключ хранилища ("sessions", "trainings")
	Value     []byte    `json:"value"`      // JSON значение
	Version   int64     `json:"version"`    // монотонно растущая версия документа
}
