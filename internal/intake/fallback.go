package intake

import (
	"time"

	"reddybook/internal/domain"
	"reddybook/internal/models"
)

var fallbackCreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func fallbackSite(id uint, domainName, label, color, logo string) models.ReferralSite {
	return models.ReferralSite{
		ID:          id,
		Name:        domainName + " (" + label + ")",
		DisplayName: label,
		URL:         "https://" + domainName,
		LogoURL:     &logo,
		ButtonColor: color,
		IsActive:    true,
		CreatedAt:   fallbackCreatedAt,
		UpdatedAt:   fallbackCreatedAt,
	}
}

// FallbackSites is shown when the registry cannot be read. It is returned as is,
// without the active filter.
func FallbackSites() []models.ReferralSite {
	return []models.ReferralSite{
		fallbackSite(1, "cricindia99.com", "CricBet99", domain.ButtonGreen, "/cricbet99.jpg"),
		fallbackSite(2, "7xmatch.com", "11xplay", domain.ButtonRed, "/11xplay.jpeg"),
		fallbackSite(3, "lagan247.com", "LaserBook", domain.ButtonPurple, "/laserbook.jpeg"),
		fallbackSite(4, "lagan365.com", "Lotus365", domain.ButtonGreen, "/lotus365.png"),
		fallbackSite(5, "reddybook247.com", "ReddyBook", domain.ButtonGreen, "/reddybook.png"),
		fallbackSite(6, "myfair247.com", "Fairplay", domain.ButtonRed, "/fairplay.png"),
	}
}
