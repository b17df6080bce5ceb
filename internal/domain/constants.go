package domain

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

const (
	SubmissionPending   = "pending"
	SubmissionContacted = "contacted"
)

const (
	ButtonGreen  = "green"
	ButtonRed    = "red"
	ButtonBlue   = "blue"
	ButtonPurple = "purple"
)

// ButtonColors are the colors a referral site button can render with.
var ButtonColors = []string{ButtonGreen, ButtonRed, ButtonBlue, ButtonPurple}

// SettingWhatsApp is the settings key holding the support WhatsApp number.
const SettingWhatsApp = "whatsapp"

// LogoNamespace is the blob namespace uploaded site logos live under.
const LogoNamespace = "logos"

// Dashboard tabs in display order.
var DashboardTabs = []string{"submissions", "sites", "admins", "whatsapp"}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleModerator
}

func IsValidButtonColor(color string) bool {
	for _, c := range ButtonColors {
		if c == color {
			return true
		}
	}
	return false
}
