package dto

// BootstrapResponse is the initial dataset a church workspace loads in one
// round trip after session resolution.
type BootstrapResponse struct {
	Church  ChurchResponse   `json:"church"`
	Members []MemberResponse `json:"members"`
	Rooms   []RoomResponse   `json:"rooms"`
	Users   []UserResponse   `json:"users"`
}
