package domain

import "time"

type Seller struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Surname      string    `json:"surname" db:"surname"`
	Email        string    `json:"email" db:"email"`
	PhoneNumber  string    `json:"phoneNumber" db:"phone_number"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Company      string    `json:"company" db:"company"`
	TaxpayerID   string    `json:"taxpayerId" db:"taxpayer_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
