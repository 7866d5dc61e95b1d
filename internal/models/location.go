package models

import "strconv"

// Room is a guest room that carries a complaint QR code
type Room struct {
	ID          int    `json:"id"`
	RoomNo      string `json:"room_no"`
	Floor       int    `json:"floor"`
	Type        string `json:"type"`
	QRGenerated bool   `json:"qr_generated"`
}

// QRValue is the string encoded into the room's QR code
func (r Room) QRValue() string {
	return "room-" + r.RoomNo
}

// FloorLabel returns "Floor 2" style text
func (r Room) FloorLabel() string {
	return "Floor " + strconv.Itoa(r.Floor)
}

// Area is a common area (lobby, gym, ...) that carries a complaint QR code
type Area struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	QRGenerated bool   `json:"qr_generated"`
}

// QRValue is the string encoded into the area's QR code
func (a Area) QRValue() string {
	return "area-" + a.Name
}
