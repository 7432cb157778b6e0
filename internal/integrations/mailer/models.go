package mailer

// Confirmation письмо с подтверждением бронирования
type Confirmation struct {
	To           []string `json:"to"`
	BookingID    string   `json:"booking_id"`
	FacilityName string   `json:"facility_name"`
	Sport        string   `json:"sport"`
	Location     string   `json:"location"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Participants string   `json:"participants"`
	ShareURL     string   `json:"share_url"`
}

// ErrorResponse модель ошибки от сервиса рассылки
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
