package dto

type BookingCountResponse struct {
	BookingCount int `json:"bookingCount"`
}

type RoomCountsResponse struct {
	TotalRooms       int `json:"totalRooms"`
	AvailableRooms   int `json:"availableRooms"`
	UnavailableRooms int `json:"unavailableRooms"`
}

type CheckInOutResponse struct {
	CheckInCount  int `json:"checkInCount"`
	CheckOutCount int `json:"checkOutCount"`
}

type SummaryResponse struct {
	BookingCountResponse
	RoomCountsResponse
	CheckInOutResponse
}
