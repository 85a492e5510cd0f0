package temple

import (
	"time"

	"gorm.io/datatypes"
)

// Puja is a bookable ritual embedded in a temple document. E-pujas carry the
// extra detail/requirement keys and a live-stream link.
type Puja struct {
	ID              uint    `json:"id"`
	NameKey         string  `json:"nameKey"`
	DescriptionKey  string  `json:"descriptionKey"`
	Price           float64 `json:"price"`
	IsEPuja         bool    `json:"isEPuja,omitempty"`
	DetailsKey      string  `json:"detailsKey,omitempty"`
	RequirementsKey string  `json:"requirementsKey,omitempty"`
	VirtualTourLink string  `json:"virtualTourLink,omitempty"`
}

// AvailablePrasad is a prasad offering subscribable for home delivery.
type AvailablePrasad struct {
	ID             uint    `json:"id"`
	NameKey        string  `json:"nameKey"`
	DescriptionKey string  `json:"descriptionKey"`
	ImageURL       string  `json:"imageUrl"`
	PriceMonthly   float64 `json:"priceMonthly"`
	PriceQuarterly float64 `json:"priceQuarterly"`
}

type FAQItem struct {
	QuestionKey string `json:"questionKey"`
	AnswerKey   string `json:"answerKey"`
}

// Temple is stored as a document: the nested collections live in JSONB
// columns and are replaced wholesale on every update, so concurrent admin
// edits follow last-write-wins.
type Temple struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	NameKey        string `gorm:"not null" json:"nameKey"`
	LocationKey    string `gorm:"not null" json:"locationKey"`
	DeityKey       string `gorm:"not null" json:"deityKey"`
	FamousPujaKey  string `json:"famousPujaKey"`
	DescriptionKey string `json:"descriptionKey"`
	ImageURL       string `json:"imageUrl"`

	Gallery          datatypes.JSONSlice[string]          `json:"gallery"`
	BenefitsKey      datatypes.JSONSlice[string]          `json:"benefitsKey"`
	Pujas            datatypes.JSONSlice[Puja]            `json:"pujas"`
	AvailablePrasads datatypes.JSONSlice[AvailablePrasad] `json:"availablePrasads"`
	FAQ              datatypes.JSONSlice[FAQItem]         `json:"faq"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Temple) TableName() string {
	return "temples"
}
