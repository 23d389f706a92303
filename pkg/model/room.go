package model

// RoomRecord is one row of the rooms CSV.
type RoomRecord struct {
	RoomNumber string `csv:"Room Number" validate:"required"`
	Capacity   int    `csv:"Capacity" validate:"required,min=1"`
}

// Room is a schedulable room.
type Room struct {
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
}

// StudentCountRecord is one row of the student counts CSV: how many
// students a branch has in a given academic year.
type StudentCountRecord struct {
	Branch string `csv:"Branch" validate:"required"`
	Year   int    `csv:"Year" validate:"required,min=1,max=4"`
	Count  int    `csv:"Count" validate:"min=0"`
}
