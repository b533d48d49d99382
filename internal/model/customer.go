package model

import "time"

// CustomerForm is the customer section of a submitted order form.
type CustomerForm struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CCNumber      string `json:"ccNumber"`
	CCExpiryMonth string `json:"ccExpiryMonth"`
	CCExpiryYear  string `json:"ccExpiryYear"`
}

// Customer is the persisted customer record created for each order.
type Customer struct {
	CustomerID int64     `json:"customerId" db:"customer_id"`
	Name       string    `json:"name" db:"name"`
	Address    string    `json:"address" db:"address"`
	Phone      string    `json:"phone" db:"phone"`
	Email      string    `json:"email" db:"email"`
	CCNumber   string    `json:"ccNumber" db:"cc_number"`
	CCExpDate  time.Time `json:"ccExpDate" db:"cc_exp_date"`
}
