package model

import "time"

// Booking бронирование кабинета на дату и период.
// Создаётся один раз, редактирования и отмены нет.
type Booking struct {
	ID            string    `json:"id"` // uuid
	UserID        string    `json:"user_id"`
	RoomID        int64     `json:"room_id"`
	SubjectID     int64     `json:"subject_id"`
	Date          string    `json:"date"` // yyyy-mm-dd, без часового пояса
	Period        int       `json:"period"`
	Justification string    `json:"justification,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingView бронирование с данными учителя, кабинета и предмета для показа.
// Отсутствующие связанные поля отдаются пустой строкой, не null.
type BookingView struct {
	ID           string `json:"id"`
	TeacherName  string `json:"teacherName"`
	TeacherEmail string `json:"teacherEmail"`
	Date         string `json:"date"`
	Time         int    `json:"time"` // номер периода
	Notes        string `json:"notes"`
	Room         string `json:"room"`
	Commons      string `json:"commons"`
	Subject      string `json:"subject"`
	SubjectCode  string `json:"subjectCode"`
}
