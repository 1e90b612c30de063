package Reports

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCompanyInfoMissingFileFallsBack(t *testing.T) {
	company := LoadCompanyInfo(filepath.Join(t.TempDir(), "nope.json5"))
	if company != DefaultCompany() {
		t.Errorf("missing file should yield defaults, got %+v", company)
	}
}

func TestLoadCompanyInfoOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "company.json5")
	content := `{
  // override just the name
  name: "Harbour Cleaners",
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	company := LoadCompanyInfo(path)
	if company.Name != "Harbour Cleaners" {
		t.Errorf("name = %q, want override", company.Name)
	}
	if company.Phone != DefaultCompany().Phone {
		t.Errorf("unset fields should keep defaults, phone = %q", company.Phone)
	}
}
