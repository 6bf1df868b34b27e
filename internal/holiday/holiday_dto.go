package holiday

type CreateHolidayRequest struct {
	HolidayDate string  `json:"holiday_date" binding:"required"`
	Name        string  `json:"holiday_name" binding:"required"`
	Description *string `json:"holiday_description"`
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	HolidayDate string  `json:"holiday_date"`
	Name        string  `json:"holiday_name"`
	Description *string `json:"holiday_description,omitempty"`
}
