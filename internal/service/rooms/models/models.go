package models

import "github.com/m04kA/CWS-BookingService/internal/domain"

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) []RoomResponse {
	resp := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		if room == nil {
			continue
		}
		resp = append(resp, RoomResponse{ID: room.ID, Type: room.Type})
	}
	return resp
}
