package Reports

import (
	"os"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// CompanyInfo is static letterhead metadata consumed read-only by the
// document renderer.
type CompanyInfo struct {
	Name    string `json:"name"`
	Slogan  string `json:"slogan"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	LogoURL string `json:"logo_url"`
}

// DefaultCompany returns the built-in letterhead.
func DefaultCompany() CompanyInfo {
	return CompanyInfo{
		Name:    "Sparkle Cleaning Services",
		Slogan:  "A cleaner space, every visit",
		Address: "14 Harbour View Road, Suite 3",
		Phone:   "+1 (555) 014-2210",
		Email:   "office@sparklecleaning.example",
		Website: "www.sparklecleaning.example",
		LogoURL: "/static/logo.png",
	}
}

// LoadCompanyInfo reads letterhead overrides from a json5 file. Missing
// file or fields fall back to the defaults.
func LoadCompanyInfo(path string) CompanyInfo {
	company := DefaultCompany()
	f, err := os.Open(path)
	if err != nil {
		return company
	}
	defer f.Close()
	_ = json5.NewDecoder(f).Decode(&company)
	return company
}
