package http

import "time"

// Every endpoint answers with the same envelope: a success flag plus either
// a data payload or an error body.
type response struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type createDriverRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`
	VehicleID     string `json:"vehicleId,omitempty"`
}

type createParcelRequest struct {
	ClientID string `json:"clientId"`
	Weight   string `json:"weight"`
	Pieces   int    `json:"pieces"`
	Type     string `json:"type"`
}

type createParcelResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
}

type createShipmentRequest struct {
	PackageID     string     `json:"packageId"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	Zone          string     `json:"zone"`
	Speed         string     `json:"speed"`
	Distance      string     `json:"distance"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	Description   string     `json:"description,omitempty"`
}

type updateShipmentStatusRequest struct {
	Action string `json:"action"`
}

// editShipmentRequest carries a staff patch. Absent fields are left alone;
// an empty driverId releases the current claim.
type editShipmentRequest struct {
	Status             *string    `json:"status,omitempty"`
	DriverID           *string    `json:"driverId,omitempty"`
	Origin             *string    `json:"origin,omitempty"`
	Destination        *string    `json:"destination,omitempty"`
	Zone               *string    `json:"zone,omitempty"`
	Speed              *string    `json:"speed,omitempty"`
	Distance           *string    `json:"distance,omitempty"`
	ScheduledDate      *time.Time `json:"scheduledDate,omitempty"`
	ClearScheduledDate bool       `json:"clearScheduledDate,omitempty"`
	Description        *string    `json:"description,omitempty"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type trackingEventView struct {
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type trackingView struct {
	TrackingNumber    string              `json:"trackingNumber"`
	Status            string              `json:"status"`
	Progress          int                 `json:"progress"`
	EstimatedDelivery *time.Time          `json:"estimatedDelivery,omitempty"`
	Events            []trackingEventView `json:"events"`
	ClientID          string              `json:"clientId"`
	ClientEmail       string              `json:"clientEmail"`
}

type unassignedShipmentView struct {
	ID            string     `json:"id"`
	PackageID     string     `json:"packageId"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	Zone          string     `json:"zone"`
	Speed         string     `json:"speed"`
	Distance      string     `json:"distance"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
