package challenges

import (
	"unicode"

	"github.com/hbenali/golessons/lesson"
)

// Report is the outcome of checking one password against the lesson's rules:
// at least 8 characters, at least one uppercase letter, at least one digit.
type Report struct {
	HasMinLength bool
	HasUppercase bool
	HasNumber    bool
}

// Valid reports whether every rule passed.
func (r Report) Valid() bool {
	return r.HasMinLength && r.HasUppercase && r.HasNumber
}

// CheckPassword evaluates pw against the rules and returns the full report,
// so callers can tell the user exactly which rules failed.
func CheckPassword(pw string) Report {
	r := Report{HasMinLength: len(pw) >= 8}
	for _, char := range pw {
		if unicode.IsUpper(char) {
			r.HasUppercase = true
		}
		if unicode.IsDigit(char) {
			r.HasNumber = true
		}
	}
	return r
}

// checkAndExplain prints the password, its verdict, and per-rule feedback.
func checkAndExplain(p *lesson.Printer, pw string) {
	p.Printf("Checking password: '%s'\n", pw)

	r := CheckPassword(pw)
	if r.Valid() {
		p.Println("  -> Password is valid.")
		return
	}

	p.Println("  -> Password is NOT valid. Issues found:")
	if !r.HasMinLength {
		p.Println("    - Must be at least 8 characters long.")
	}
	if !r.HasUppercase {
		p.Println("    - Must contain at least one uppercase letter.")
	}
	if !r.HasNumber {
		p.Println("    - Must contain at least one number.")
	}
}

// Password walks five fixture passwords through the checker, showing one
// valid case and every way a password can fail.
func Password() *lesson.Lesson {
	return &lesson.Lesson{
		Slug:    "password",
		Title:   "Password Checker",
		Summary: "String iteration and rune classification: validate passwords.",
		Topics:  []string{"strings", "runes", "branching"},
		Run: func(s lesson.Streams) error {
			p := lesson.NewPrinter(s.Out)
			for _, pw := range []string{
				"Password123",  // valid
				"short",        // too short
				"longpassword", // no uppercase or number
				"LongPassword", // no number
				"password123",  // no uppercase
			} {
				checkAndExplain(p, pw)
			}
			return p.Err()
		},
	}
}
