package idgen

import (
	"errors"
	"strings"
)

// UnknownCode is returned for empty or blank category names.
const UnknownCode = "UNK"

const (
	codeLength = 3
	fillerRune = 'X'
)

// CodeTable maps category names to their 3-letter inventory codes.
// Lookups are exact and case-sensitive; names that are not registered get
// a code derived from the name itself, so resolution never fails.
type CodeTable struct {
	codes map[string]string
}

// NewCodeTable returns an empty table.
func NewCodeTable() *CodeTable {
	return &CodeTable{codes: make(map[string]string)}
}

// DefaultCodeTable returns a table seeded with the pharmacy category
// mappings used by the inventory screen.
func DefaultCodeTable() *CodeTable {
	t := NewCodeTable()
	for name, code := range map[string]string{
		"Pain Reliever":             "PAI",
		"Fever Reducer":             "FEV",
		"NSAIDs":                    "NSA",
		"Antibiotic":                "ANB",
		"Antifungal":                "ANF",
		"Antiviral":                 "ANV",
		"Cough Expectorant":         "CEX",
		"Cough Suppressant":         "CSU",
		"Cold & Flu":                "CFU",
		"Allergy":                   "ALL",
		"Stomach Care":              "STC",
		"Antacid":                   "ATA",
		"Anti-diarrheal":            "ADA",
		"Laxative":                  "LAX",
		"Anti-emetic":               "AEM",
		"Vitamin C":                 "VTC",
		"Multivitamin":              "MVT",
		"B-Complex":                 "BCO",
		"Minerals":                  "MIN",
		"Supplements":               "SUP",
		"Herbal Medicine":           "HER",
		"Skin Ointment":             "SKO",
		"Antifungal Cream":          "AFC",
		"Steroid Cream":             "STC",
		"Eye Care":                  "EYE",
		"Ear Care":                  "EAR",
		"First Aid":                 "FAI",
		"Alcohol / Disinfectant":    "ALD",
		"Baby Care":                 "BAB",
		"Women's Health":            "WMH",
		"Hypertension Meds":         "HYP",
		"Diabetes Meds":             "DIA",
		"Cholesterol Meds":          "CHO",
		"Respiratory / Asthma":      "RES",
		"Urinary Care":              "URI",
		"Mental Health":             "MEN",
		"Oral Rehydration Solution": "ORS",
		"Order":                     "ORD",
	} {
		t.codes[name] = code
	}
	return t
}

// Add registers a mapping. The code must be exactly 3 characters and is
// stored uppercased.
func (t *CodeTable) Add(name, code string) error {
	if name == "" {
		return errors.New("category name cannot be empty")
	}
	if len(code) != codeLength {
		return errors.New("category code must be exactly 3 characters")
	}
	t.codes[name] = strings.ToUpper(code)
	return nil
}

// All returns a copy of the registered mappings.
func (t *CodeTable) All() map[string]string {
	out := make(map[string]string, len(t.codes))
	for name, code := range t.codes {
		out[name] = code
	}
	return out
}

// Resolve returns the registered code for a category name, or derives one
// when the name is not registered. Derivation is deterministic: the same
// name always yields the same code.
func (t *CodeTable) Resolve(name string) string {
	if name == "" {
		return UnknownCode
	}
	if code, ok := t.codes[name]; ok {
		return code
	}
	return deriveCode(name)
}

// deriveCode builds a 3-letter code from an unregistered category name.
// Single-word names contribute their leading characters; multi-word names
// contribute one initial per word, topped up from the first word, then
// padded with the filler.
func deriveCode(name string) string {
	clean := strings.ToUpper(strings.TrimSpace(name))
	if clean == "" {
		return UnknownCode
	}

	words := strings.Fields(clean)
	var code []rune
	if len(words) == 1 {
		runes := []rune(words[0])
		if len(runes) > codeLength {
			runes = runes[:codeLength]
		}
		code = runes
	} else {
		for _, word := range words {
			if len(code) >= codeLength {
				break
			}
			code = append(code, []rune(word)[0])
		}
		first := []rune(words[0])
		for i := 1; i < len(first) && len(code) < codeLength; i++ {
			code = append(code, first[i])
		}
	}

	for len(code) < codeLength {
		code = append(code, fillerRune)
	}
	return string(code[:codeLength])
}
