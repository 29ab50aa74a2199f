package model

// SlotTime каноническое определение периода в расписании,
// одна строка на пару (день недели, номер периода).
type SlotTime struct {
	ID         int64  `json:"id"`
	SlotNumber int    `json:"slot_number"`
	Weekday    string `json:"weekday"` // "Monday".."Friday"
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// LineSlot привязка линии расписания к номеру периода в конкретный день.
type LineSlot struct {
	LineNumber int    `json:"line_number"`
	Weekday    string `json:"weekday"`
	SlotNumber int    `json:"slot_number"`
}

// SlotAvailability период с флагом занятости, то что уходит на фронт.
type SlotAvailability struct {
	ID        int64  `json:"id"`
	Number    int    `json:"number"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}
