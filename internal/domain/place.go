package domain

import "fmt"

// PlaceType - дискриминатор Place
type PlaceType string

const (
	PlaceTypeBusiness PlaceType = "business"
	PlaceTypeEvent    PlaceType = "event"
	PlaceTypePublic   PlaceType = "public"
)

func (t PlaceType) Valid() bool {
	switch t {
	case PlaceTypeBusiness, PlaceTypeEvent, PlaceTypePublic:
		return true
	}
	return false
}

// Place - место каталога: бизнес, событие или публичное место.
// Заполнен ровно один из Business, Event, Public, и он соответствует Type.
// После загрузки каталога места не изменяются.
type Place struct {
	ID           int64         `json:"id" yaml:"id"`
	Type         PlaceType     `json:"type" yaml:"type"`
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description" yaml:"description"`
	Address      string        `json:"address" yaml:"address"`
	Location     Point         `json:"location" yaml:"location"`
	VideoURL     string        `json:"video_url,omitempty" yaml:"video_url"`
	LogoURL      string        `json:"logo_url,omitempty" yaml:"logo_url"`
	Category     string        `json:"category" yaml:"category"`
	Subcategory  string        `json:"subcategory" yaml:"subcategory"`
	IsFree       bool          `json:"is_free" yaml:"is_free"`
	Photos       []string      `json:"photos" yaml:"photos"`
	Differential string        `json:"differential,omitempty" yaml:"differential"`
	Rating       float64       `json:"rating" yaml:"rating"`
	Comments     []Comment     `json:"comments" yaml:"comments"`
	SocialMedia  []SocialMedia `json:"social_media" yaml:"social_media"`

	Business *BusinessDetails    `json:"business,omitempty" yaml:"business,omitempty"`
	Event    *EventDetails       `json:"event,omitempty" yaml:"event,omitempty"`
	Public   *PublicPlaceDetails `json:"public,omitempty" yaml:"public,omitempty"`
}

type Comment struct {
	User    string `json:"user" yaml:"user"`
	Comment string `json:"comment" yaml:"comment"`
	Rating  int    `json:"rating" yaml:"rating"`
}

type SocialMedia struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// BusinessDetails - payload варианта business
type BusinessDetails struct {
	OpeningHours      string         `json:"opening_hours" yaml:"opening_hours"`
	Studies           []string       `json:"studies,omitempty" yaml:"studies"`
	BestProducts      []Product      `json:"best_products,omitempty" yaml:"best_products"`
	TestimonialVideos []string       `json:"testimonial_videos,omitempty" yaml:"testimonial_videos"`
	Environments      []Environment  `json:"environments,omitempty" yaml:"environments"`
	Awards            []string       `json:"awards,omitempty" yaml:"awards"`
	SpecialOffers     []SpecialOffer `json:"special_offers,omitempty" yaml:"special_offers"`
	Phone             string         `json:"phone,omitempty" yaml:"phone"`
	WhatsApp          string         `json:"whatsapp,omitempty" yaml:"whatsapp"`
}

type Product struct {
	Name             string `json:"name" yaml:"name"`
	Image            string `json:"image" yaml:"image"`
	Description      string `json:"description" yaml:"description"`
	CreationVideoURL string `json:"creation_video_url,omitempty" yaml:"creation_video_url"`
}

type Environment struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
}

type SpecialOffer struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ValidUntil  string `json:"valid_until" yaml:"valid_until"`
}

// EventDetails - payload варианта event
type EventDetails struct {
	EventDate  string        `json:"event_date" yaml:"event_date"`
	TicketInfo TicketInfo    `json:"ticket_info" yaml:"ticket_info"`
	Details    EventSchedule `json:"details" yaml:"details"`
	Organizer  string        `json:"organizer" yaml:"organizer"`
	Sponsors   []string      `json:"sponsors,omitempty" yaml:"sponsors"`
}

type TicketInfo struct {
	Price            string `json:"price" yaml:"price"`
	BuyURL           string `json:"buy_url" yaml:"buy_url"`
	AvailableTickets *int   `json:"available_tickets,omitempty" yaml:"available_tickets"`
}

type EventSchedule struct {
	Date     string         `json:"date" yaml:"date"`
	Time     string         `json:"time" yaml:"time"`
	Duration string         `json:"duration" yaml:"duration"`
	Lineup   []string       `json:"lineup,omitempty" yaml:"lineup"`
	Schedule []ScheduleItem `json:"schedule,omitempty" yaml:"schedule"`
}

type ScheduleItem struct {
	Time     string `json:"time" yaml:"time"`
	Activity string `json:"activity" yaml:"activity"`
}

// PublicPlaceDetails - payload варианта public
type PublicPlaceDetails struct {
	OpeningHours         string          `json:"opening_hours" yaml:"opening_hours"`
	Info                 PublicPlaceInfo `json:"info" yaml:"info"`
	HistoricalInfo       string          `json:"historical_info,omitempty" yaml:"historical_info"`
	CulturalSignificance string          `json:"cultural_significance,omitempty" yaml:"cultural_significance"`
	NearbyAttractions    []string        `json:"nearby_attractions,omitempty" yaml:"nearby_attractions"`
	Phone                string          `json:"phone,omitempty" yaml:"phone"`
}

type PublicPlaceInfo struct {
	BestTimeToVisit   string       `json:"best_time_to_visit" yaml:"best_time_to_visit"`
	Facilities        []string     `json:"facilities" yaml:"facilities"`
	Restrictions      []string     `json:"restrictions" yaml:"restrictions"`
	AccessibilityInfo string       `json:"accessibility_info" yaml:"accessibility_info"`
	GuidedTours       []GuidedTour `json:"guided_tours,omitempty" yaml:"guided_tours"`
}

type GuidedTour struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Duration    string `json:"duration" yaml:"duration"`
	Price       string `json:"price" yaml:"price"`
	Schedule    string `json:"schedule" yaml:"schedule"`
}

// IsEventual - место существует ограниченное время (событие)
func (p *Place) IsEventual() bool {
	return p.Type == PlaceTypeEvent
}

// IsPermanent - бизнес или публичное место
func (p *Place) IsPermanent() bool {
	return p.Type == PlaceTypeBusiness || p.Type == PlaceTypePublic
}

// OpeningHours - часы работы постоянных мест, для событий пусто
func (p *Place) OpeningHours() string {
	switch p.Type {
	case PlaceTypeBusiness:
		if p.Business != nil {
			return p.Business.OpeningHours
		}
	case PlaceTypePublic:
		if p.Public != nil {
			return p.Public.OpeningHours
		}
	}
	return ""
}

// CoverPhoto возвращает первое фото или пустую строку
func (p *Place) CoverPhoto() string {
	if len(p.Photos) == 0 {
		return ""
	}
	return p.Photos[0]
}

// Validate проверяет дискриминатор, payload варианта и координаты
func (p *Place) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("place %d: unknown type %q", p.ID, p.Type)
	}

	set := 0
	if p.Business != nil {
		set++
	}
	if p.Event != nil {
		set++
	}
	if p.Public != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("place %d: expected exactly one variant payload, got %d", p.ID, set)
	}

	switch p.Type {
	case PlaceTypeBusiness:
		if p.Business == nil {
			return fmt.Errorf("place %d: business payload missing", p.ID)
		}
	case PlaceTypeEvent:
		if p.Event == nil {
			return fmt.Errorf("place %d: event payload missing", p.ID)
		}
	case PlaceTypePublic:
		if p.Public == nil {
			return fmt.Errorf("place %d: public payload missing", p.ID)
		}
	}

	if !p.Location.Valid() {
		return fmt.Errorf("place %d: invalid coordinates (%f, %f)", p.ID, p.Location.Lat, p.Location.Lon)
	}
	return nil
}
