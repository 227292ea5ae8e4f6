package domain

// Room комната коворкинга
// Сервис читает комнаты, но не изменяет их
type Room struct {
	ID   int64
	Type string
}
