package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

func TestDefault(t *testing.T) {
	d := Default()

	sizes := map[string]int{
		"MMM": 12, "MMMM": 12, "MMMMM": 12,
		"EEE": 7, "EEEE": 7, "EEEEE": 7,
		"a": 2, "A": 2,
	}
	for key, want := range sizes {
		if got := len(d[key]); got != want {
			t.Errorf("len(Default()[%q]) = %d, want %d", key, got, want)
		}
	}
	if d["MMM"][9] != "Oct" || d["EEEEE"][0] != "日" || d["A"][1] != "PM" {
		t.Errorf("unexpected default names: %v %v %v", d["MMM"][9], d["EEEEE"][0], d["A"][1])
	}
	if err := Validate(d); err != nil {
		t.Errorf("Validate(Default()) = %v", err)
	}

	d["MMM"][0] = "changed"
	if Default()["MMM"][0] != "Jan" {
		t.Error("Default() must return an independent copy")
	}
}

func TestMergeDoesNotMutate(t *testing.T) {
	base := Default()
	partial := Table{"MMM": {"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}}
	baseBefore := base.Clone()
	partialBefore := partial.Clone()

	merged := Merge(base, partial)

	if merged["MMM"][2] != "Mär" {
		t.Errorf("merged MMM[2] = %q, want Mär", merged["MMM"][2])
	}
	if merged["EEEE"][1] != "Monday" {
		t.Errorf("unspecified keys must keep defaults, got %q", merged["EEEE"][1])
	}
	if diff := cmp.Diff(baseBefore, base); diff != "" {
		t.Errorf("Merge mutated base (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(partialBefore, partial); diff != "" {
		t.Errorf("Merge mutated partial (-before +after):\n%s", diff)
	}

	merged["MMM"][0] = "x"
	if partial["MMM"][0] != "Jan" {
		t.Error("merged table shares storage with partial")
	}
}

func TestValidate(t *testing.T) {
	twelve := make([]string, 12)
	for i := range twelve {
		twelve[i] = "m"
	}

	testCases := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"empty", Table{}, false},
		{"month numeric key", Table{"MM": twelve}, false},
		{"meridiem", Table{"a": {"vorm.", "nachm."}}, false},
		{"short month list", Table{"MMM": {"Jan"}}, true},
		{"weekday with month count", Table{"EEE": twelve}, true},
		{"double meridiem key", Table{"aa": {"am", "pm"}}, true},
		{"mixed key", Table{"MMd": twelve}, true},
		{"day key", Table{"dd": twelve}, true},
		{"empty name", Table{"A": {"", "PM"}}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.table)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr && !eiyaerror.HasCode(err, eiyaerror.CodeInvalidLocale) {
				t.Errorf("Validate() code = %v, want INVALID_LOCALE", eiyaerror.GetCode(err))
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := Default()
	b := Default()
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal tables must have equal fingerprints")
	}
	b["a"] = []string{"vm", "nm"}
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("different tables must have different fingerprints")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const deTOML = `
MMM = ["Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"]
EEE = ["So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"]
`

const zhYAML = `
MMM: ["1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"]
a: ["上午", "下午"]
`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	de, err := LoadFile(writeFile(t, dir, "de.toml", deTOML))
	if err != nil {
		t.Fatalf("LoadFile(de.toml) error = %v", err)
	}
	if de["MMM"][9] != "Okt" || len(de) != 2 {
		t.Errorf("de table = %v", de)
	}

	zh, err := LoadFile(writeFile(t, dir, "zh.yml", zhYAML))
	if err != nil {
		t.Fatalf("LoadFile(zh.yml) error = %v", err)
	}
	if diff := cmp.Diff([]string{"上午", "下午"}, zh["a"]); diff != "" {
		t.Errorf("zh a mismatch (-want +got):\n%s", diff)
	}

	_, err = LoadFile(writeFile(t, dir, "bad.toml", `EEE = ["So"]`))
	if !eiyaerror.HasCode(err, eiyaerror.CodeInvalidLocale) {
		t.Errorf("LoadFile(bad) error = %v, want INVALID_LOCALE", err)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	if !eiyaerror.HasCode(err, eiyaerror.CodeNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want NOT_FOUND", err)
	}

	_, err = LoadFile(writeFile(t, dir, "x.json", "{}"))
	if !eiyaerror.HasCode(err, eiyaerror.CodeInvalidLocale) {
		t.Errorf("LoadFile(json) error = %v, want INVALID_LOCALE", err)
	}
}

func TestRegistry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de.toml", deTOML)
	writeFile(t, dir, "zh.yaml", zhYAML)
	writeFile(t, dir, "broken.toml", `MMM = ["Jan"]`)
	writeFile(t, dir, "README.md", "not a locale")

	reg, err := NewRegistry("en", nil)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	n, err := reg.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if n != 2 {
		t.Errorf("LoadDir() = %d, want 2", n)
	}
	if diff := cmp.Diff([]string{"de", "en", "zh"}, reg.Locales()); diff != "" {
		t.Errorf("Locales() mismatch (-want +got):\n%s", diff)
	}

	testCases := []struct {
		prefs      []string
		wantLocale string
		wantMMM2   string
	}{
		{[]string{"de"}, "de", "Mär"},
		{[]string{"de-AT"}, "de", "Mär"},
		{[]string{"fr-FR,de;q=0.8"}, "de", "Mär"},
		{[]string{"zh"}, "zh", "3月"},
		{[]string{"ja"}, "en", "Mar"},
		{nil, "en", "Mar"},
		{[]string{"!!"}, "en", "Mar"},
	}

	for _, tc := range testCases {
		table, locale := reg.Match(tc.prefs...)
		if locale != tc.wantLocale {
			t.Errorf("Match(%v) locale = %q, want %q", tc.prefs, locale, tc.wantLocale)
		}
		if table["MMM"][2] != tc.wantMMM2 {
			t.Errorf("Match(%v) MMM[2] = %q, want %q", tc.prefs, table["MMM"][2], tc.wantMMM2)
		}
		if table["EEEE"][0] != "Sunday" {
			t.Errorf("Match(%v) lost default EEEE", tc.prefs)
		}
	}

	got, ok := reg.Lookup("de")
	if !ok {
		t.Fatal("Lookup(de) not found")
	}
	got["MMM"][0] = "mutated"
	again, _ := reg.Lookup("de")
	if again["MMM"][0] != "Jan" {
		t.Error("Lookup must return a copy")
	}
}

func TestRegistryErrors(t *testing.T) {
	if _, err := NewRegistry("not a tag!", nil); !eiyaerror.HasCode(err, eiyaerror.CodeInvalidLocale) {
		t.Errorf("NewRegistry(bad) error = %v", err)
	}

	reg, _ := NewRegistry("en", nil)
	if err := reg.Register("de", Table{"EEE": {"So"}}); !eiyaerror.HasCode(err, eiyaerror.CodeInvalidLocale) {
		t.Errorf("Register(invalid table) error = %v", err)
	}
	if _, err := reg.LoadDir(filepath.Join(t.TempDir(), "nope")); !eiyaerror.HasCode(err, eiyaerror.CodeNotFound) {
		t.Errorf("LoadDir(missing) error = %v", err)
	}
}

func TestNormalizeLocale(t *testing.T) {
	testCases := map[string]string{
		"en":      "en",
		"en_us":   "en-US",
		"zh-cn":   "zh-CN",
		"":        "",
		"!!":      "",
		" de-DE ": "de-DE",
	}
	for input, want := range testCases {
		if got := NormalizeLocale(input); got != want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", input, got, want)
		}
	}
	if got := ParseLocaleFromFilename("/x/zh_CN.yaml"); got != "zh-CN" {
		t.Errorf("ParseLocaleFromFilename() = %q, want zh-CN", got)
	}
}
