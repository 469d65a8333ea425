package queries

import "time"

type ReservationView struct {
	ID                  int64     `json:"id"`
	CustomerID          int64     `json:"customer_id"`
	CustomerName        string    `json:"customer_name"`
	CustomerPhoneNumber string    `json:"customer_phone_number"`
	RestaurantID        int64     `json:"restaurant_id"`
	RestaurantName      string    `json:"restaurant_name"`
	PeopleCount         int32     `json:"people_count"`
	ReservationTime     time.Time `json:"reservation_time"`
	Status              string    `json:"status"`
	Visited             bool      `json:"visited"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type RestaurantView struct {
	ID          int64     `json:"id"`
	ManagerID   int64     `json:"manager_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReviewView struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	RestaurantID  int64     `json:"restaurant_id"`
	ReservationID int64     `json:"reservation_id"`
	Title         string    `json:"title"`
	Comment       string    `json:"comment"`
	Rating        int32     `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
