package model

type Subject struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// SubjectLine предмет учителя на конкретной линии расписания.
// Один учитель может вести один предмет на нескольких линиях.
type SubjectLine struct {
	SubjectID int64  `json:"id"`
	Name      string `json:"name"` // "<subject> (Line <n>)"
	Code      string `json:"code"`
	Line      int    `json:"line"`
}
