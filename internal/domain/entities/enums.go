package entities

import (
	"strings"

	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
)

// Platform representa a plataforma onde o conteúdo do deal é publicado
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformOther     Platform = "other"
)

// DealStatus representa a etapa do deal no funil
type DealStatus string

const (
	DealStatusLead             DealStatus = "lead"
	DealStatusNegotiation      DealStatus = "negotiation"
	DealStatusSigned           DealStatus = "signed"
	DealStatusContentDelivered DealStatus = "content_delivered"
	DealStatusPaid             DealStatus = "paid"
)

// ReminderType representa o tipo de lembrete
type ReminderType string

const (
	ReminderTypeFollowUp        ReminderType = "follow_up"
	ReminderTypeContentDelivery ReminderType = "content_delivery"
	ReminderTypePayment         ReminderType = "payment"
)

var (
	platforms     = []Platform{PlatformInstagram, PlatformYouTube, PlatformTikTok, PlatformTwitter, PlatformLinkedIn, PlatformOther}
	dealStatuses  = []DealStatus{DealStatusLead, DealStatusNegotiation, DealStatusSigned, DealStatusContentDelivered, DealStatusPaid}
	reminderTypes = []ReminderType{ReminderTypeFollowUp, ReminderTypeContentDelivery, ReminderTypePayment}
)

// IsValid verifica se a plataforma pertence ao conjunto conhecido
func (p Platform) IsValid() bool {
	for _, v := range platforms {
		if v == p {
			return true
		}
	}
	return false
}

// IsValid verifica se o status pertence ao conjunto conhecido
func (s DealStatus) IsValid() bool {
	for _, v := range dealStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValid verifica se o tipo pertence ao conjunto conhecido
func (t ReminderType) IsValid() bool {
	for _, v := range reminderTypes {
		if v == t {
			return true
		}
	}
	return false
}

// AllowedPlatforms lista as plataformas aceitas, separadas por vírgula
func AllowedPlatforms() string {
	values := make([]string, len(platforms))
	for i, p := range platforms {
		values[i] = string(p)
	}
	return strings.Join(values, ", ")
}

// AllowedDealStatuses lista os status aceitos, separados por vírgula
func AllowedDealStatuses() string {
	values := make([]string, len(dealStatuses))
	for i, s := range dealStatuses {
		values[i] = string(s)
	}
	return strings.Join(values, ", ")
}

// AllowedReminderTypes lista os tipos aceitos, separados por vírgula
func AllowedReminderTypes() string {
	values := make([]string, len(reminderTypes))
	for i, t := range reminderTypes {
		values[i] = string(t)
	}
	return strings.Join(values, ", ")
}

// ValidatePlatform é o validador único de plataforma, usado no binding HTTP e nos services
func ValidatePlatform(value string) error {
	if !Platform(value).IsValid() {
		return domainerrors.NewValidationError("platform", "validation.platform",
			map[string]interface{}{"Allowed": AllowedPlatforms()})
	}
	return nil
}

// ValidateDealStatus é o validador único de status de deal
func ValidateDealStatus(value string) error {
	if !DealStatus(value).IsValid() {
		return domainerrors.NewValidationError("status", "validation.deal_status",
			map[string]interface{}{"Allowed": AllowedDealStatuses()})
	}
	return nil
}

// ValidateReminderType é o validador único de tipo de lembrete
func ValidateReminderType(value string) error {
	if !ReminderType(value).IsValid() {
		return domainerrors.NewValidationError("type", "validation.reminder_type",
			map[string]interface{}{"Allowed": AllowedReminderTypes()})
	}
	return nil
}
