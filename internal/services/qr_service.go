package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Adarshkumar111/Maintenance/internal/database"
	"github.com/Adarshkumar111/Maintenance/internal/models"
)

var (
	// ErrRoomNotFound indicates no room matches the given ID
	ErrRoomNotFound = fmt.Errorf("room not found")

	// ErrAreaNotFound indicates no area matches the given ID
	ErrAreaNotFound = fmt.Errorf("area not found")
)

// QRService renders the QR codes posted in rooms and common areas. The code
// only carries a label such as "room-101"; scanning it does not route anywhere.
type QRService struct {
	locationRepo *database.LocationRepository
	size         int
	logger       *logrus.Logger
}

// NewQRService creates a new QR service producing size x size PNGs
func NewQRService(locationRepo *database.LocationRepository, size int, logger *logrus.Logger) *QRService {
	return &QRService{
		locationRepo: locationRepo,
		size:         size,
		logger:       logger,
	}
}

// ListRooms returns every room
func (s *QRService) ListRooms() ([]models.Room, error) {
	rooms, err := s.locationRepo.ListRooms()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// ListAreas returns every common area
func (s *QRService) ListAreas() ([]models.Area, error) {
	areas, err := s.locationRepo.ListAreas()
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return areas, nil
}

// RoomQR renders the PNG for a room
func (s *QRService) RoomQR(id int) ([]byte, error) {
	room, err := s.locationRepo.GetRoom(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return s.encode(room.QRValue())
}

// AreaQR renders the PNG for a common area
func (s *QRService) AreaQR(id int) ([]byte, error) {
	area, err := s.locationRepo.GetArea(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrAreaNotFound
		}
		return nil, fmt.Errorf("failed to get area: %w", err)
	}
	return s.encode(area.QRValue())
}

// GenerateRoomQR flags a room's QR code as generated
func (s *QRService) GenerateRoomQR(id int) (*models.Room, error) {
	room, err := s.locationRepo.MarkRoomQRGenerated(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	s.logger.WithField("room_no", room.RoomNo).Info("Room QR generated")
	return room, nil
}

// GenerateAreaQR flags an area's QR code as generated
func (s *QRService) GenerateAreaQR(id int) (*models.Area, error) {
	area, err := s.locationRepo.MarkAreaQRGenerated(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrAreaNotFound
		}
		return nil, fmt.Errorf("failed to update area: %w", err)
	}
	s.logger.WithField("area", area.Name).Info("Area QR generated")
	return area, nil
}

func (s *QRService) encode(value string) ([]byte, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
