package domain

// Dining room size is fixed; tables are numbered 1..TableCount.
const TableCount = 6

const (
	TableAvailable = "Available"
	TableReserved  = "Reserved"
)

// Reservation holds a table for a named guest.
type Reservation struct {
	TableNumber int
	UserName    string
	PhoneNumber string
}
