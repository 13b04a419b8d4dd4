package models

// Donor is an entry in the shared donor lookup registry. UserID records
// which account created the entry and gates who may edit or remove it.
type Donor struct {
	ID         int64  `db:"id" json:"id"`
	UserID     int64  `db:"user_id" json:"user_id"`
	Name       string `db:"name" json:"name"`
	BloodGroup string `db:"bloodgroup" json:"bloodgroup"`
	Location   string `db:"location" json:"location"`
	Phone      string `db:"phone" json:"phone"`
}
