package model

// Common именованная зона школы (корпус), содержит кабинеты.
type Common struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Room struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CommonID   int64  `json:"common_id"`
	IsBookable bool   `json:"is_bookable"`
}

// RoomAvailability кабинет с флагом занятости на выбранные дату и период.
type RoomAvailability struct {
	Name     string `json:"name"`
	IsBooked bool   `json:"isBooked"`
}
