package genpassword

import "github.com/XenorInspire/worgenx/internal/charset"

// Document is the JSON representation of a generated password batch,
// field names matching the format documented for the -j/--json flag.
type Document struct {
	NumberOfPasswords int      `json:"number_of_passwords"`
	PasswordLength    uint32   `json:"password_length"`
	Uppercase         bool     `json:"uppercase"`
	Lowercase         bool     `json:"lowercase"`
	Numbers           bool     `json:"numbers"`
	SpecialCharacters bool     `json:"special_characters"`
	Passwords         []string `json:"passwords"`
}

// NewDocument builds a Document from the configuration used to generate
// passwords and the resulting batch.
func NewDocument(cfg Config, classes charset.Classes, passwords []string) Document {
	return Document{
		NumberOfPasswords: len(passwords),
		PasswordLength:    cfg.Length,
		Uppercase:         classes.Uppercase,
		Lowercase:         classes.Lowercase,
		Numbers:           classes.Numbers,
		SpecialCharacters: classes.Special,
		Passwords:         passwords,
	}
}
