package api

import (
	"encoding/json"
	"time"
)

// PutDocumentRequest представляет запрос на запись документа пользователя
type PutDocumentRequest struct {
	Value json.RawMessage `json:"value"` // произвольный JSON документ
}

// DocumentResponse представляет документ из хранилища пользователя
type DocumentResponse struct {
	UpdatedAt time.Time       `json:"updated_at"` // время последней записи на сервере
	Key       string          `json:"key"`        // ключ документа (sessions, trainings, ...)
	Value     json.RawMessage `json:"value"`      // содержимое документа
	Version   int64           `json:"version"`    // номер версии, растет с каждой записью
}
