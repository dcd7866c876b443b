package dto

import (
	"strings"
	"time"

	"schoolku_backend/internals/features/school/events/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// 🔹 Request membuat acara
type EventRequest struct {
	EventTitle       string     `json:"event_title" validate:"required,min=3,max=255"`
	EventDescription string     `json:"event_description"`
	EventLocation    string     `json:"event_location"`
	EventStartAt     time.Time  `json:"event_start_at" validate:"required"`
	EventEndAt       *time.Time `json:"event_end_at,omitempty"`
	EventCapacity    int        `json:"event_capacity" validate:"gte=0"`
	EventAudience    []string   `json:"event_audience"`
}

// 🔹 Request update parsial
type EventUpdateRequest struct {
	EventTitle       *string    `json:"event_title,omitempty"`
	EventDescription *string    `json:"event_description,omitempty"`
	EventLocation    *string    `json:"event_location,omitempty"`
	EventStartAt     *time.Time `json:"event_start_at,omitempty"`
	EventEndAt       *time.Time `json:"event_end_at,omitempty"`
	EventCapacity    *int       `json:"event_capacity,omitempty"`
	EventAudience    []string   `json:"event_audience,omitempty"`
}

// 🔹 Response acara
type EventResponse struct {
	EventID          uuid.UUID  `json:"event_id"`
	EventTitle       string     `json:"event_title"`
	EventSlug        string     `json:"event_slug"`
	EventDescription string     `json:"event_description,omitempty"`
	EventLocation    string     `json:"event_location,omitempty"`
	EventStartAt     time.Time  `json:"event_start_at"`
	EventEndAt       *time.Time `json:"event_end_at,omitempty"`
	EventCapacity    int        `json:"event_capacity"`
	EventAudience    []string   `json:"event_audience,omitempty"`
}

// 🔹 Response pendaftaran
type RegistrationResponse struct {
	ID           uuid.UUID `json:"id"`
	EventID      uuid.UUID `json:"event_id"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name,omitempty"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
}

// 🔄 Fungsi bantu generate slug dari judul
func GenerateEventSlug(title string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
}

// 🔄 Konversi dari request → model
func (r *EventRequest) ToModel(schoolID uuid.UUID) *model.EventModel {
	return &model.EventModel{
		EventSchoolID:    schoolID,
		EventTitle:       r.EventTitle,
		EventSlug:        GenerateEventSlug(r.EventTitle),
		EventDescription: r.EventDescription,
		EventLocation:    r.EventLocation,
		EventStartAt:     r.EventStartAt,
		EventEndAt:       r.EventEndAt,
		EventCapacity:    r.EventCapacity,
		EventAudience:    pq.StringArray(r.EventAudience),
	}
}

// 🔄 Konversi dari model → response
func ToEventResponse(m *model.EventModel) EventResponse {
	return EventResponse{
		EventID:          m.EventID,
		EventTitle:       m.EventTitle,
		EventSlug:        m.EventSlug,
		EventDescription: m.EventDescription,
		EventLocation:    m.EventLocation,
		EventStartAt:     m.EventStartAt,
		EventEndAt:       m.EventEndAt,
		EventCapacity:    m.EventCapacity,
		EventAudience:    []string(m.EventAudience),
	}
}

func ToRegistrationResponse(m *model.EventRegistrationModel, userName string) RegistrationResponse {
	return RegistrationResponse{
		ID:           m.ID,
		EventID:      m.EventID,
		UserID:       m.UserID,
		UserName:     userName,
		Status:       m.Status,
		RegisteredAt: m.RegisteredAt,
	}
}
